package users

import (
	"context"
	"net/http"
	"strings"
)

const (
	authenticatedEmailsPathConstant = "user/emails"
	emailsFieldNameConstant         = "emails"
)

type emailsPayload struct {
	Emails []string `json:"emails"`
}

// Emails lists the addresses of the authenticated account.
func (service *Service) Emails(executionContext context.Context, options ListOptions) ([]Email, error) {
	return collectPages[Email](executionContext, service.transport, authenticatedEmailsPathConstant, options.query())
}

// AddEmail registers one or more addresses with the authenticated account.
func (service *Service) AddEmail(executionContext context.Context, emails ...string) ([]Email, error) {
	normalizedEmails, normalizationError := normalizeEmails(emails)
	if normalizationError != nil {
		return nil, normalizationError
	}

	addedEmails := make([]Email, 0, len(normalizedEmails))
	if postError := service.transport.Post(executionContext, authenticatedEmailsPathConstant, emailsPayload{Emails: normalizedEmails}, &addedEmails); postError != nil {
		return nil, postError
	}
	return addedEmails, nil
}

// RemoveEmail deletes one or more addresses from the authenticated account.
func (service *Service) RemoveEmail(executionContext context.Context, emails ...string) (bool, error) {
	normalizedEmails, normalizationError := normalizeEmails(emails)
	if normalizationError != nil {
		return false, normalizationError
	}
	return service.transport.BooleanFromResponse(executionContext, http.MethodDelete, authenticatedEmailsPathConstant, emailsPayload{Emails: normalizedEmails})
}

// normalizeEmails trims addresses and drops blanks so a single address and a
// one-element list produce the same request body.
func normalizeEmails(emails []string) ([]string, error) {
	normalizedEmails := make([]string, 0, len(emails))
	for _, email := range emails {
		trimmedEmail := strings.TrimSpace(email)
		if len(trimmedEmail) == 0 {
			continue
		}
		normalizedEmails = append(normalizedEmails, trimmedEmail)
	}
	if len(normalizedEmails) == 0 {
		return nil, InvalidInputError{FieldName: emailsFieldNameConstant, Message: requiredValueMessageConstant}
	}
	return normalizedEmails, nil
}
