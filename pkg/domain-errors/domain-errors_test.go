package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the error primitives every adapter operation reports through.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeUnsupported, Message: "reset not supported"}
		s.Equal("reset not supported", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeUnavailable}
		s.Equal("backend_unavailable", err.Error())
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeUnavailable, Message: "cmp offline"}
		err2 := &Error{Code: CodeUnavailable, Message: "cmp not initialized"}
		s.True(err1.Is(err2))
	})

	s.Run("does not match different codes", func() {
		s.False((&Error{Code: CodeUnsupported}).Is(&Error{Code: CodeUnavailable}))
	})

	s.Run("does not match non-domain errors", func() {
		s.False((&Error{Code: CodeNotFound}).Is(errors.New("not found")))
	})

	s.Run("works with errors.Is through chain", func() {
		inner := &Error{Code: CodeInvalidInput, Message: "bad source"}
		wrapped := &Error{Code: CodeInternal, Message: "wrapped", Err: inner}
		s.True(errors.Is(wrapped, &Error{Code: CodeInvalidInput}))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves original domain code when wrapping domain error", func() {
		wrapped := Wrap(New(CodeUnsupported, "dialog not supported"), CodeInternal, "present dialog")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeUnsupported, domainErr.Code)
		s.Equal("present dialog", domainErr.Message)
	})

	s.Run("uses provided code when wrapping non-domain error", func() {
		original := errors.New("connection refused")
		wrapped := Wrap(original, CodeUnavailable, "read iab strings")

		s.True(HasCode(wrapped, CodeUnavailable))
		s.True(errors.Is(wrapped, original))
	})
}

func (s *DomainErrorsSuite) TestCodeOf() {
	s.Equal(CodeUnavailable, CodeOf(Wrap(errors.New("x"), CodeUnavailable, "y")))
	s.Equal(CodeInternal, CodeOf(errors.New("plain")))
	s.False(HasCode(nil, CodeNotFound))
}
