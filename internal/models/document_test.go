package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UploadResultTestSuite struct {
	suite.Suite
}

func TestUploadResultSuite(t *testing.T) {
	suite.Run(t, new(UploadResultTestSuite))
}

func (s *UploadResultTestSuite) TestParseDocumentType() {
	dt, err := ParseDocumentType("receipt")
	s.NoError(err)
	s.Equal(DocumentTypeReceipt, dt)

	dt, err = ParseDocumentType("invoice")
	s.NoError(err)
	s.Equal(DocumentTypeInvoice, dt)

	_, err = ParseDocumentType("statement")
	s.ErrorIs(err, ErrInvalidDocumentType)

	_, err = ParseDocumentType("")
	s.ErrorIs(err, ErrInvalidDocumentType)
}

func (s *UploadResultTestSuite) TestValidate_RequiresSuccessFlag() {
	var result UploadResult
	s.Require().NoError(json.Unmarshal([]byte(`{"id":"abc","amount":12.5}`), &result))
	s.ErrorIs(result.Validate(), ErrMissingSuccessFlag)

	s.Require().NoError(json.Unmarshal([]byte(`{"success":false,"error":"unsupported file type"}`), &result))
	s.NoError(result.Validate())
	s.False(result.Succeeded())
}

func (s *UploadResultTestSuite) TestSucceeded() {
	yes, no := true, false
	s.True((&UploadResult{Success: &yes}).Succeeded())
	s.False((&UploadResult{Success: &no}).Succeeded())
	s.False((&UploadResult{}).Succeeded())
}

func (s *UploadResultTestSuite) TestFailureMessage_PrefersMessageOverError() {
	result := &UploadResult{Error: "unsupported file type", Message: "We could not read that file"}
	s.Equal("We could not read that file", result.FailureMessage())

	result = &UploadResult{Error: "unsupported file type"}
	s.Equal("unsupported file type", result.FailureMessage())

	result = &UploadResult{}
	s.Equal("Upload failed", result.FailureMessage())
}

func (s *UploadResultTestSuite) TestDisplayName() {
	s.Equal("Blue Bottle", (&UploadResult{Merchant: "Blue Bottle"}).DisplayName())
	s.Equal("Acme Corp", (&UploadResult{Vendor: "Acme Corp"}).DisplayName())
	s.Equal("Unknown", (&UploadResult{}).DisplayName())
}

func (s *UploadResultTestSuite) TestAmountDecodesAsDecimal() {
	var result UploadResult
	s.Require().NoError(json.Unmarshal([]byte(`{"success":true,"amount":1234.56,"currency":"USD"}`), &result))
	s.Require().NotNil(result.Amount)
	s.True(result.Amount.Equal(decimal.NewFromFloat(1234.56)))
}
