package models

import (
	"errors"
	"regexp"
)

var (
	ErrPhoneNumber  = errors.New("phone number must be 9 to 15 digits")
	ErrAccessCardNo = errors.New("access card number can have maximum 6 alphanumeric characters")
)

var (
	phoneNumberRe  = regexp.MustCompile(`^\d{9,15}$`)
	accessCardNoRe = regexp.MustCompile(`^[a-zA-Z0-9]{0,6}$`)
)

func ValidPhoneNumber(s string) bool { return phoneNumberRe.MatchString(s) }

// ValidAccessCardNo accepts up to 6 alphanumeric characters, including none.
func ValidAccessCardNo(s string) bool { return accessCardNoRe.MatchString(s) }
