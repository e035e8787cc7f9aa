package utils

import (
	"fmt"
	"regexp"
)

var (
	emailPattern        = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	chequeNumberPattern = regexp.MustCompile(`^CHQ-\d{6}$`)
)

// ValidateEmail checks an address for a plausible mailbox format.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// ValidateChequeNumber checks the bank reference format (e.g. CHQ-000123).
func ValidateChequeNumber(number string) error {
	if !chequeNumberPattern.MatchString(number) {
		return fmt.Errorf("invalid cheque number format: %s", number)
	}
	return nil
}
