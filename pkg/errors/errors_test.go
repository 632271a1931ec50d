package errors

import (
	"fmt"
	"testing"
)

func TestWrapWithCode(t *testing.T) {
	err := WrapWithCode(ErrNotFound, CodeNotFound, "tweet not found with ID 42")

	if !IsNotFound(err) {
		t.Error("expected wrapped error to match ErrNotFound")
	}
	if GetCode(err) != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, GetCode(err))
	}
	if GetMessage(err) != "tweet not found with ID 42" {
		t.Errorf("unexpected message: %s", GetMessage(err))
	}
	if err.Error() != "tweet not found with ID 42: not found" {
		t.Errorf("unexpected error string: %s", err.Error())
	}
}

func TestWrapWithCode_Nil(t *testing.T) {
	if WrapWithCode(nil, CodeNotFound, "ignored") != nil {
		t.Error("expected nil when wrapping nil")
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("expected nil when wrapping nil")
	}
}

func TestGetCode_ThroughFmtWrap(t *testing.T) {
	inner := WrapWithCode(ErrInvalidInput, CodeInvalidInput, "invalid tweet ID: abc")
	outer := fmt.Errorf("render: %w", inner)

	if !IsInvalidInput(outer) {
		t.Error("expected outer error to match ErrInvalidInput")
	}
	if GetCode(outer) != CodeInvalidInput {
		t.Errorf("expected code %s, got %s", CodeInvalidInput, GetCode(outer))
	}
	if IsMissingCredential(outer) || IsRemoteAPI(outer) || IsMalformedResponse(outer) {
		t.Error("outer error matched an unrelated sentinel")
	}
}

type codedError struct{}

func (codedError) Error() string     { return "upstream said no" }
func (codedError) ErrorCode() string { return CodeRemoteAPI }

func TestGetCode_CustomCoder(t *testing.T) {
	err := fmt.Errorf("fetch: %w", codedError{})

	if GetCode(err) != CodeRemoteAPI {
		t.Errorf("expected code %s, got %s", CodeRemoteAPI, GetCode(err))
	}
	if GetMessage(err) != "fetch: upstream said no" {
		t.Errorf("unexpected message: %s", GetMessage(err))
	}
}

func TestWrap_KeepsInnerCode(t *testing.T) {
	inner := WrapWithCode(ErrNotFound, CodeNotFound, "tweet not found with ID 1")
	err := Wrap(inner, "render failed")

	if !IsNotFound(err) {
		t.Error("expected wrapped error to match ErrNotFound")
	}
	if GetCode(err) != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, GetCode(err))
	}
	if GetMessage(err) != "render failed" {
		t.Errorf("unexpected message: %s", GetMessage(err))
	}
}

func TestGetMessage_PlainError(t *testing.T) {
	if GetMessage(nil) != "" {
		t.Error("expected empty message for nil error")
	}
	if GetMessage(fmt.Errorf("boom")) != "boom" {
		t.Error("expected plain error text")
	}
	if GetCode(fmt.Errorf("boom")) != "" {
		t.Error("expected no code for plain error")
	}
}
