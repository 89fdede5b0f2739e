// Package messages turns validity results into user-facing text.
//
// A Catalog holds one template per failure kind. Catalog.Message picks the
// template for the highest-priority flag of a result and fills in the
// {minLength}, {maxLength}, {length}, {min} and {max} placeholders with the
// field's live values. A field title replaces the pattern mismatch message.
//
// Catalogs can be loaded from YAML or JSON files and merged over Default:
//
//	custom, err := messages.LoadFile(ctx, "messages.yaml")
//	if err != nil {
//		return err
//	}
//	catalog := messages.Default().Merge(custom)
//
// Unknown keys are ignored and empty templates never override.
package messages
