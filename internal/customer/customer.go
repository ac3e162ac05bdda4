package customer

import "strings"

// Info carries the metadata the customer types into the checkout modal. Every
// field is optional; the zero value is a perfectly good customer. The With*
// setters return copies so previously handed-out snapshots never change under
// the caller.
type Info struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	TableNumber string `json:"tableNumber"`
}

func (i Info) WithName(name string) Info {
	i.Name = name
	return i
}

func (i Info) WithPhone(phone string) Info {
	i.Phone = phone
	return i
}

func (i Info) WithTableNumber(table string) Info {
	i.TableNumber = table
	return i
}

// DisplayName returns the trimmed name, or a generic placeholder when blank.
func (i Info) DisplayName() string {
	if name := strings.TrimSpace(i.Name); name != "" {
		return name
	}
	return "customer"
}

// DerivedEmail builds a synthetic address from the phone number. The payment
// backend requires an email on every charge; this one is non-deliverable and
// must never be treated as a contact channel.
func (i Info) DerivedEmail() string {
	phone := strings.TrimSpace(i.Phone)
	if phone == "" {
		phone = "guest"
	}
	return phone + "@phone.local"
}

// IsValid reports whether the info can be submitted. All fields are optional,
// so it always can; kept for symmetry with the other entities.
func (i Info) IsValid() bool {
	return true
}
