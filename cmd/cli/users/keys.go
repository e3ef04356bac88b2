package users

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/ghusers/internal/users"
	"github.com/temirov/ghusers/internal/utils/flags"
	pathutils "github.com/temirov/ghusers/internal/utils/path"
)

const (
	keysCommandNameConstant            = "keys"
	keysCommandShortDescription        = "List public SSH keys of a user, or of the authenticated user"
	keyCommandNameConstant             = "key"
	keyCommandShortDescription         = "Show a public SSH key of the authenticated user"
	addKeyCommandNameConstant          = "add-key"
	addKeyCommandShortDescription      = "Register a public SSH key with the authenticated user"
	updateKeyCommandNameConstant       = "update-key"
	updateKeyCommandShortDescription   = "Change the title or material of a public SSH key"
	removeKeyCommandNameConstant       = "remove-key"
	removeKeyCommandShortDescription   = "Remove a public SSH key from the authenticated user"
	keyTitleFlagNameConstant           = "title"
	keyTitleFlagUsageConstant          = "Key title"
	keyMaterialFlagNameConstant        = "key"
	keyMaterialFlagUsageConstant       = "Public key material, such as \"ssh-ed25519 AAAA...\""
	keyFileFlagNameConstant            = "key-file"
	keyFileFlagUsageConstant           = "Path to a public key file (~ and $VARIABLES are expanded)"
	keyMaterialConflictMessageConstant = "--key and --key-file are mutually exclusive"
	keyFileReadErrorTemplateConstant   = "unable to read key file %s: %w"
)

func (builder *CommandGroupBuilder) buildKeysCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(keysCommandNameConstant, loginArgumentUsageConstant),
		Short: keysCommandShortDescription,
		Args:  cobra.MaximumNArgs(1),
	}
	listFlags := flags.BindListFlags(command.Flags())

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		login := optionalArgument(arguments, 0)
		if len(login) == 0 {
			return activeSession.service.Keys(command.Context(), listOptionsFromFlags(listFlags))
		}
		return activeSession.service.UserKeys(command.Context(), login, listOptionsFromFlags(listFlags))
	})
	return command
}

func (builder *CommandGroupBuilder) buildKeyCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(keyCommandNameConstant, identifierArgumentUsageConstant),
		Short: keyCommandShortDescription,
		Args:  cobra.ExactArgs(1),
	}

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		keyIdentifier, identifierError := parseKeyIdentifier(arguments[0])
		if identifierError != nil {
			return nil, identifierError
		}
		return activeSession.service.Key(command.Context(), keyIdentifier)
	})
	return command
}

func (builder *CommandGroupBuilder) buildAddKeyCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   addKeyCommandNameConstant,
		Short: addKeyCommandShortDescription,
		Args:  cobra.NoArgs,
	}
	keyFlags := bindKeyFlags(command)

	command.RunE = builder.runWithSession(func(command *cobra.Command, _ []string, activeSession *session) (any, error) {
		keyMaterial, keyMaterialError := readKeyMaterial(keyFlags)
		if keyMaterialError != nil {
			return nil, keyMaterialError
		}
		title, _ := keyFlags.Value(keyTitleFlagNameConstant)
		return activeSession.service.AddKey(command.Context(), title, keyMaterial.OrElse(""))
	})
	return command
}

func (builder *CommandGroupBuilder) buildUpdateKeyCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(updateKeyCommandNameConstant, identifierArgumentUsageConstant),
		Short: updateKeyCommandShortDescription,
		Args:  cobra.ExactArgs(1),
	}
	keyFlags := bindKeyFlags(command)

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		keyIdentifier, identifierError := parseKeyIdentifier(arguments[0])
		if identifierError != nil {
			return nil, identifierError
		}
		keyMaterial, keyMaterialError := readKeyMaterial(keyFlags)
		if keyMaterialError != nil {
			return nil, keyMaterialError
		}
		update := users.KeyUpdate{
			Title: optionalString(keyFlags, keyTitleFlagNameConstant),
			Key:   keyMaterial,
		}
		return activeSession.service.UpdateKey(command.Context(), keyIdentifier, update)
	})
	return command
}

func (builder *CommandGroupBuilder) buildRemoveKeyCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(removeKeyCommandNameConstant, identifierArgumentUsageConstant),
		Short: removeKeyCommandShortDescription,
		Args:  cobra.ExactArgs(1),
	}

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		keyIdentifier, identifierError := parseKeyIdentifier(arguments[0])
		if identifierError != nil {
			return nil, identifierError
		}
		return activeSession.service.RemoveKey(command.Context(), keyIdentifier)
	})
	return command
}

func bindKeyFlags(command *cobra.Command) *flags.OptionalStrings {
	return flags.BindOptionalStringFlags(command.Flags(),
		flags.OptionalStringFlagDefinition{Name: keyTitleFlagNameConstant, Usage: keyTitleFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: keyMaterialFlagNameConstant, Usage: keyMaterialFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: keyFileFlagNameConstant, Usage: keyFileFlagUsageConstant},
	)
}

// readKeyMaterial returns the key given inline or read from --key-file.
func readKeyMaterial(keyFlags *flags.OptionalStrings) (users.Optional[string], error) {
	inlineKey, inlineSupplied := keyFlags.Value(keyMaterialFlagNameConstant)
	keyFilePath, fileSupplied := keyFlags.Value(keyFileFlagNameConstant)
	switch {
	case inlineSupplied && fileSupplied:
		return users.None[string](), errors.New(keyMaterialConflictMessageConstant)
	case inlineSupplied:
		return users.Some(inlineKey), nil
	case fileSupplied:
		expandedPath := pathutils.NewHomeExpander().Expand(strings.TrimSpace(keyFilePath))
		keyContent, readError := os.ReadFile(expandedPath)
		if readError != nil {
			return users.None[string](), fmt.Errorf(keyFileReadErrorTemplateConstant, expandedPath, readError)
		}
		return users.Some(strings.TrimSpace(string(keyContent))), nil
	default:
		return users.None[string](), nil
	}
}
