package users

import (
	"context"
	"fmt"
	"net/http"
)

const (
	authenticatedKeysPathConstant        = "user/keys"
	authenticatedKeyPathTemplateConstant = "user/keys/%d"
	keysSuffixConstant                   = "keys"
	keyIdentifierFieldNameConstant       = "key_id"
	keyTitleFieldNameConstant            = "title"
	keyMaterialFieldNameConstant         = "key"
	positiveIdentifierMessageConstant    = "must be a positive identifier"
	emptyKeyUpdateMessageConstant        = "at least one of title or key required"
	keyUpdateFieldNameConstant           = "update"
)

// Key fetches a single public key of the authenticated account.
func (service *Service) Key(executionContext context.Context, keyID int64) (Key, error) {
	path, pathError := authenticatedKeyPath(keyID)
	if pathError != nil {
		return Key{}, pathError
	}

	var key Key
	if getError := service.transport.Get(executionContext, path, nil, &key); getError != nil {
		return Key{}, getError
	}
	return key, nil
}

// Keys lists the public keys of the authenticated account.
func (service *Service) Keys(executionContext context.Context, options ListOptions) ([]Key, error) {
	return collectPages[Key](executionContext, service.transport, authenticatedKeysPathConstant, options.query())
}

// UserKeys lists the verified public keys of login.
func (service *Service) UserKeys(executionContext context.Context, login string, options ListOptions) ([]Key, error) {
	escapedLogin, loginError := pathSegment(loginFieldNameConstant, login)
	if loginError != nil {
		return nil, loginError
	}
	path := fmt.Sprintf(namedUserScopedPathTemplateConstant, escapedLogin, keysSuffixConstant)
	return collectPages[Key](executionContext, service.transport, path, options.query())
}

// AddKey registers a public key with the authenticated account.
func (service *Service) AddKey(executionContext context.Context, title string, keyMaterial string) (Key, error) {
	trimmedTitle, titleError := requireValue(keyTitleFieldNameConstant, title)
	if titleError != nil {
		return Key{}, titleError
	}
	trimmedKeyMaterial, keyMaterialError := requireValue(keyMaterialFieldNameConstant, keyMaterial)
	if keyMaterialError != nil {
		return Key{}, keyMaterialError
	}

	payload := map[string]any{
		keyTitleFieldNameConstant:    trimmedTitle,
		keyMaterialFieldNameConstant: trimmedKeyMaterial,
	}

	var key Key
	if postError := service.transport.Post(executionContext, authenticatedKeysPathConstant, payload, &key); postError != nil {
		return Key{}, postError
	}
	return key, nil
}

// UpdateKey changes the title or material of a public key.
func (service *Service) UpdateKey(executionContext context.Context, keyID int64, update KeyUpdate) (Key, error) {
	path, pathError := authenticatedKeyPath(keyID)
	if pathError != nil {
		return Key{}, pathError
	}

	payload := update.payload()
	if len(payload) == 0 {
		return Key{}, InvalidInputError{FieldName: keyUpdateFieldNameConstant, Message: emptyKeyUpdateMessageConstant}
	}

	var key Key
	if patchError := service.transport.Patch(executionContext, path, payload, &key); patchError != nil {
		return Key{}, patchError
	}
	return key, nil
}

// RemoveKey deletes a public key from the authenticated account.
func (service *Service) RemoveKey(executionContext context.Context, keyID int64) (bool, error) {
	path, pathError := authenticatedKeyPath(keyID)
	if pathError != nil {
		return false, pathError
	}
	return service.transport.BooleanFromResponse(executionContext, http.MethodDelete, path, nil)
}

func authenticatedKeyPath(keyID int64) (string, error) {
	if keyID <= 0 {
		return "", InvalidInputError{FieldName: keyIdentifierFieldNameConstant, Message: positiveIdentifierMessageConstant}
	}
	return fmt.Sprintf(authenticatedKeyPathTemplateConstant, keyID), nil
}
