package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/kv"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
)

const (
	DefaultLabel = "My Address"

	MsgAddressRequired = "Please enter an address"
	MsgUnknownAddress  = "That address no longer exists."
	MsgAddressInvalid  = "Address fields are too long."
)

var validate = validator.New()

// Address is a delivery address kept on the client installation only.
type Address struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Line  string `json:"line"`
	City  string `json:"city"`
	State string `json:"state"`
}

// AddressInput is the submitted address form.
type AddressInput struct {
	Label string `form:"label" validate:"max=60"`
	Line  string `form:"line" validate:"required,max=200"`
	City  string `form:"city" validate:"max=80"`
	State string `form:"state" validate:"max=80"`
}

func (in AddressInput) normalize() AddressInput {
	in.Label = strings.TrimSpace(in.Label)
	in.Line = strings.TrimSpace(in.Line)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	if in.Label == "" {
		in.Label = DefaultLabel
	}
	return in
}

// Book is the address list of one installation together with the selected
// address. A selected id never references a missing address.
type Book struct {
	store kv.Store
}

func NewBook(store kv.Store) *Book {
	return &Book{store: store}
}

// List returns addresses newest first. A corrupt list reads as empty.
func (b *Book) List(ctx context.Context) ([]Address, error) {
	raw, ok, err := b.store.Get(ctx, kv.KeyAddresses)
	if err != nil {
		return nil, fmt.Errorf("checkout: load addresses: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var out []Address
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logger.Warn("discarding unreadable address list", map[string]any{"error": err.Error()})
		return nil, nil
	}
	return out, nil
}

// Add prepends the address and selects it.
func (b *Book) Add(ctx context.Context, in AddressInput) (Address, error) {
	in = in.normalize()
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].StructField() == "Line" && verrs[0].Tag() == "required" {
			return Address{}, apperr.Wrap(apperr.KindValidation, "add_address", MsgAddressRequired, err)
		}
		return Address{}, apperr.Wrap(apperr.KindValidation, "add_address", MsgAddressInvalid, err)
	}

	list, err := b.List(ctx)
	if err != nil {
		return Address{}, err
	}

	addr := Address{
		ID:    uuid.NewString(),
		Label: in.Label,
		Line:  in.Line,
		City:  in.City,
		State: in.State,
	}
	list = append([]Address{addr}, list...)

	encoded, err := encode(list)
	if err != nil {
		return Address{}, err
	}
	err = b.store.Apply(ctx, kv.Mutation{Set: map[string]string{
		kv.KeyAddresses:         encoded,
		kv.KeySelectedAddressID: addr.ID,
	}})
	if err != nil {
		return Address{}, fmt.Errorf("checkout: save address: %w", err)
	}
	return addr, nil
}

// Remove drops the address, clearing the selection if it pointed there.
// Removing an unknown id changes nothing.
func (b *Book) Remove(ctx context.Context, id string) error {
	list, err := b.List(ctx)
	if err != nil {
		return err
	}

	next := make([]Address, 0, len(list))
	for _, a := range list {
		if a.ID != id {
			next = append(next, a)
		}
	}
	if len(next) == len(list) {
		return nil
	}

	encoded, err := encode(next)
	if err != nil {
		return err
	}
	m := kv.Mutation{Set: map[string]string{kv.KeyAddresses: encoded}}

	selected, _, err := b.store.Get(ctx, kv.KeySelectedAddressID)
	if err != nil {
		return fmt.Errorf("checkout: load selection: %w", err)
	}
	if selected == id {
		m.Remove = []string{kv.KeySelectedAddressID}
	}

	if err := b.store.Apply(ctx, m); err != nil {
		return fmt.Errorf("checkout: remove address: %w", err)
	}
	return nil
}

// Select marks id as the delivery address. Selecting it again is a no-op.
func (b *Book) Select(ctx context.Context, id string) error {
	list, err := b.List(ctx)
	if err != nil {
		return err
	}
	if _, ok := find(list, id); !ok {
		return apperr.New(apperr.KindValidation, "select_address", MsgUnknownAddress)
	}
	if err := b.store.Set(ctx, kv.KeySelectedAddressID, id); err != nil {
		return fmt.Errorf("checkout: select address: %w", err)
	}
	return nil
}

// Selected returns the selected address. A stale selection reads as none.
func (b *Book) Selected(ctx context.Context) (Address, bool, error) {
	id, ok, err := b.store.Get(ctx, kv.KeySelectedAddressID)
	if err != nil {
		return Address{}, false, fmt.Errorf("checkout: load selection: %w", err)
	}
	if !ok || id == "" {
		return Address{}, false, nil
	}
	list, err := b.List(ctx)
	if err != nil {
		return Address{}, false, err
	}
	addr, found := find(list, id)
	return addr, found, nil
}

func find(list []Address, id string) (Address, bool) {
	for _, a := range list {
		if a.ID == id {
			return a, true
		}
	}
	return Address{}, false
}

func encode(list []Address) (string, error) {
	if list == nil {
		list = []Address{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("checkout: encode addresses: %w", err)
	}
	return string(data), nil
}
