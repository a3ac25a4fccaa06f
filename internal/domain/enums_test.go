package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewpoint(t *testing.T) {
	v, err := ParseViewpoint("Career-Counselor")
	require.NoError(t, err)
	assert.Equal(t, ViewpointCareerCounselor, v)

	_, err = ParseViewpoint("manager")
	assert.ErrorIs(t, err, ErrUnknownViewpoint)
}

func TestParseFormDomain(t *testing.T) {
	d, err := ParseFormDomain(" Emotional ")
	require.NoError(t, err)
	assert.Equal(t, DomainEmotional, d)

	_, err = ParseFormDomain("medical")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestCaseStatus_Valid(t *testing.T) {
	for _, s := range CaseStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, CaseStatus("").Valid())
	assert.False(t, CaseStatus("Active").Valid())
}

func TestCase_Record_OmitsEmptyFields(t *testing.T) {
	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	c := &Case{FirstName: "Dana", LastName: "Levi", DateOfBirth: &dob}

	rec := c.Record()
	assert.Equal(t, "Dana", rec.Get("firstName").String())
	assert.Equal(t, "1990-05-17", rec.Get("dateOfBirth").String())
	_, ok := rec["email"]
	assert.False(t, ok)
}

func TestCase_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Case{}).Validate(), ErrInvalidCase)
	assert.Error(t, (&Case{FirstName: "A", Email: "nope"}).Validate())
	assert.NoError(t, (&Case{LastName: "Levi"}).Validate())
}

func TestCase_AgeOn(t *testing.T) {
	dob := time.Date(1958, 6, 1, 0, 0, 0, 0, time.UTC)
	c := &Case{DateOfBirth: &dob}

	age, ok := c.AgeOn(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 66, age)

	age, _ = c.AgeOn(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 67, age)
}
