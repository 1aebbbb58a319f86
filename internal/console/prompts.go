package console

const rule = "=========================================================="

const (
	promptWelcome        = "Welcome! Please enter a command."
	promptStartMenu      = "1 - Create a new account\n2 - Login to an existing account\n3 - Quit program"
	promptStartError     = "Sorry, your input was invalid. Please enter '1', '2', or '3'."
	promptUsername       = "Please enter your username:"
	promptPassword       = "Please enter your password:"
	promptBadLogin       = "Sorry, that username and password do not match our records. Please try again."
	promptOrganizerFirst = "There are no organizer accounts currently registered.\nThe account created here will be an organizer account."
	promptUsernameTaken  = "Sorry, that username is already taken."
	promptEmptyUsername  = "Sorry, the username cannot be empty."
	promptAccountMade    = "Your account has been created. You can now log in."
	promptInvalidCommand = "Sorry, that is not a valid command. Please try again."
	promptFailure        = "Sorry, something went wrong. Please try again."

	promptMainMenu          = "Please enter a command:\n1 - Log out\n2 - View inbox\n3 - View archived messages\n4 - Send a message\n5 - Requests"
	promptMainMenuOrganizer = "6 - Message all users of a type"
	promptLoggedOut         = "You have been logged out."

	promptInboxTitle       = "Here is your inbox:\n" + rule
	promptEndOfInbox       = rule + "\nEnd of inbox.\n"
	promptArchiveTitle     = "Here are your archived messages.\n" + rule
	promptEndOfArchive     = rule + "\nEnd of archives.\n"
	promptEmptyInbox       = "Sorry, you do not have any messages in your inbox."
	promptEmptyArchive     = "Sorry, you do not have any archived messages."
	promptInboxMenu        = "Please enter a command:\n1 - Return to main menu\n2 - Interact with a message"
	promptMessageSelection = "Please enter the number of the message you wish to select."
	promptBadMessageNumber = "Sorry, that is not a valid message number. Please try again."
	promptInteractionTitle = "Please enter a command to interact with the message:"
	promptRecipients       = "Please enter the recipients' usernames (separated by commas) and then hit Enter."
	promptUserType         = "Please enter the type of user to message (attendee, organizer, speaker, vip or admin)."
	promptBadUserType      = "Sorry, that is not a valid user type."
	promptText             = "Please enter the text for your message."
	promptNoRecipients     = "Sorry, there were no valid recipients."
	promptMessageSent      = "Your message has been sent to all valid recipients:"
	promptReplySent        = "Your reply has been sent."
	promptDeleted          = "Your message has been deleted."
	promptArchived         = "Your message has been archived."
	promptMarkedUnread     = "Message has been marked as unread."
	promptUnmarkedUnread   = "Message has been re-marked as read."
	unreadSuffix           = "[UNREAD!]\n"

	promptRequestMenu          = "Please enter a command:\n1 - Return to main menu\n2 - View all requests you've sent\n3 - Make a request"
	promptRequestMenuOrganizer = "4 - Delete a request\n5 - View all requests from all users\n6 - Reply to a request"
	promptUserRequests         = "Here are your requests:\n" + rule
	promptAllRequests          = "Here are all requests.\n" + rule
	promptEndOfRequests        = rule + "\nEnd of requests.\n"
	promptNoUserRequests       = "Sorry, you do not have any requests sent."
	promptNoRequests           = "Sorry, there are no requests sent."
	promptRequestSelection     = "Please enter the number of the request you wish to select."
	promptBadRequestNumber     = "Sorry, that is not a valid request number. Please try again."
	promptRequestSent          = "Your request has been sent to the event organizers."
	promptRequestDeleted       = "You have successfully deleted the request."
	promptAlreadyReplied       = "There is already a reply to this request."
	promptRequestReply         = "Please enter the text for your reply."
	statusAddressed            = "[ADDRESSED]"
	statusPending              = "[PENDING]"
)
