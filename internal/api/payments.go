package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// GatewayFields are posted to the payment gateway in this order.
var GatewayFields = []string{
	"key", "txnid", "amount", "productinfo", "firstname", "email",
	"phone", "surl", "furl", "hash", "udf1", "udf2",
}

type FormField struct {
	Name  string
	Value string
}

// PaymentForm is the auto-submitting redirect to the payment gateway.
type PaymentForm struct {
	Action string
	Fields []FormField
}

func (f *PaymentForm) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.Action = stringify(raw["action"])
	f.Fields = make([]FormField, 0, len(GatewayFields))
	for _, name := range GatewayFields {
		f.Fields = append(f.Fields, FormField{Name: name, Value: stringify(raw[name])})
	}
	return nil
}

// Value returns a gateway field, or "" when absent.
func (f PaymentForm) Value(name string) string {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld.Value
		}
	}
	return ""
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

type PaymentService struct{ c *Client }

// Initiate asks the backend to price the cart and sign a gateway request.
func (s *PaymentService) Initiate(ctx context.Context, addressID string) (*PaymentForm, error) {
	body, err := jsonBody(map[string]string{"address_id": addressID})
	if err != nil {
		return nil, err
	}
	var out PaymentForm
	err = s.c.do(ctx, call{family: "payments", method: http.MethodPost, path: "/payu/initiate/", body: body}, &out)
	if err != nil {
		return nil, err
	}
	if out.Action == "" {
		return nil, fmt.Errorf("api: payment initiation returned no gateway action")
	}
	return &out, nil
}
