package model

import "errors"

var ErrorInvalidUsernameOrPassword = errors.New("invalid username or password")
var ErrorUserNotFound = errors.New("user not found")
var ErrorUserExists = errors.New("username already taken")
var ErrorMessageNotFound = errors.New("message not found")
var ErrorRequestNotFound = errors.New("request not found")
