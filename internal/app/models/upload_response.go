package models

import "fmt"

type UploadResponse struct {
	success bool
	message string
}

func NewUploadResponse(success bool, message string) *UploadResponse {
	return &UploadResponse{success: success, message: message}
}

func (u *UploadResponse) Success() bool   { return u.success }
func (u *UploadResponse) Message() string { return u.message }

func (u *UploadResponse) String() string {
	return fmt.Sprintf("Success: %t, Message: %s", u.success, u.message)
}
