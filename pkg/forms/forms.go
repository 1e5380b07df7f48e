// Package forms validates the contact and quote forms and simulates their submission.
package forms

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages shown next to a rejected form
const (
	MsgRequired     = "Veuillez remplir tous les champs obligatoires."
	MsgConditions   = "Veuillez accepter les conditions générales."
	MsgEmail        = "Veuillez saisir une adresse e-mail valide."
	MsgProduct      = "Veuillez sélectionner un produit de la liste."
	MsgSubmitFailed = "Une erreur est survenue. Veuillez réessayer plus tard."
)

// OtherProduct is the quote form's catch-all product choice
const OtherProduct = "autre"

// Product is one entry of the quote form's product list
type Product struct {
	ID    string
	Name  string
	Image string
}

// ArpinProducts are the products a quote can be requested for
var ArpinProducts = []Product{
	{ID: "couvertures", Name: "Couvertures traditionnelles", Image: "/img/Arpin/image4.jpeg"},
	{ID: "plaids", Name: "Plaids et jetés", Image: "/img/Arpin/image003.jpg"},
	{ID: "decoration", Name: "Articles de décoration", Image: "/img/Arpin/IMG_0253.jpg"},
	{ID: "vetements", Name: "Vêtements en laine", Image: "/img/Arpin/image4.jpeg"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("arpinproduct", func(fl validator.FieldLevel) bool {
		return IsArpinProduct(fl.Field().String())
	})
	return v
}

// IsArpinProduct accepts a product id, a product name or the catch-all choice
func IsArpinProduct(value string) bool {
	if value == OtherProduct {
		return true
	}
	for _, p := range ArpinProducts {
		if value == p.ID || value == p.Name {
			return true
		}
	}
	return false
}

// Error is a rejected form: one message for the banner and the offending fields
type Error struct {
	Message string
	Fields  []string
}

func (e *Error) Error() string {
	return e.Message
}

// ContactForm is the general contact form
type ContactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

// ContactFromValues reads a posted contact form
func ContactFromValues(v url.Values) ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(v.Get("name")),
		Email:   strings.TrimSpace(v.Get("email")),
		Subject: strings.TrimSpace(v.Get("subject")),
		Message: strings.TrimSpace(v.Get("message")),
	}
}

// Validate checks the contact form
func (f ContactForm) Validate() error {
	return check(f)
}

// QuoteForm is the Arpin quote request form
type QuoteForm struct {
	Nom              string `validate:"required"`
	Email            string `validate:"required,email"`
	Telephone        string
	Message          string `validate:"required"`
	Produit          string `validate:"omitempty,arpinproduct"`
	AcceptConditions bool   `validate:"eq=true"`
}

// QuoteFromValues reads a posted quote form; the checkbox counts as accepted when present
func QuoteFromValues(v url.Values) QuoteForm {
	accept := v.Get("acceptConditions")
	return QuoteForm{
		Nom:              strings.TrimSpace(v.Get("nom")),
		Email:            strings.TrimSpace(v.Get("email")),
		Telephone:        strings.TrimSpace(v.Get("telephone")),
		Message:          strings.TrimSpace(v.Get("message")),
		Produit:          strings.TrimSpace(v.Get("produit")),
		AcceptConditions: accept == "on" || accept == "true",
	}
}

// Validate checks required fields first, then the conditions checkbox, then formats
func (f QuoteForm) Validate() error {
	return check(f)
}

// check runs the struct tags and reports the highest priority failure
func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	byTag := map[string][]string{}
	for _, fe := range verrs {
		byTag[fe.Tag()] = append(byTag[fe.Tag()], fe.Field())
	}

	switch {
	case len(byTag["required"]) > 0:
		return &Error{Message: MsgRequired, Fields: byTag["required"]}
	case len(byTag["eq"]) > 0:
		return &Error{Message: MsgConditions, Fields: byTag["eq"]}
	case len(byTag["email"]) > 0:
		return &Error{Message: MsgEmail, Fields: byTag["email"]}
	case len(byTag["arpinproduct"]) > 0:
		return &Error{Message: MsgProduct, Fields: byTag["arpinproduct"]}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &Error{Message: MsgRequired, Fields: fields}
}
