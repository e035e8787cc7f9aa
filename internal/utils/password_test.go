package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.Contains(t, hash, "$")

	assert.NoError(t, CheckPassword(hash, "s3cret"))
	assert.Error(t, CheckPassword(hash, "wrong"))

	// Hashing is salted, so two hashes of the same password differ.
	other, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestCheckPasswordMalformed(t *testing.T) {
	assert.Error(t, CheckPassword("not-a-hash", "anything"))
	assert.Error(t, CheckPassword("zz$deadbeef", "anything"))
	assert.Error(t, CheckPassword("", ""))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("sara@estateflow.ae"))
	assert.NoError(t, ValidateEmail("omar.hussain@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
}

func TestValidateChequeNumber(t *testing.T) {
	assert.NoError(t, ValidateChequeNumber("CHQ-000123"))
	assert.Error(t, ValidateChequeNumber("CHQ-123"))
	assert.Error(t, ValidateChequeNumber("CHK-000123"))
	assert.Error(t, ValidateChequeNumber(""))
}
