package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

// IsEmail requires a valid email address. Parsing follows RFC 5322 with
// additional restrictions for typical web use: a single @, a non-empty local
// part, and a dotted domain without empty labels.
func IsEmail() Check[string] {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				if strings.TrimSpace(value) == "" {
					return false
				}

				addr, err := mail.ParseAddress(value)
				if err != nil {
					return false
				}

				parts := strings.Split(addr.Address, "@")
				if len(parts) != 2 {
					return false
				}

				localPart, domain := parts[0], parts[1]
				if localPart == "" {
					return false
				}

				if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
					return false
				}
				for part := range strings.SplitSeq(domain, ".") {
					if part == "" {
						return false
					}
				}

				return true
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be a valid email address",
				TranslationKey: "validation.email",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		}
	}
}

// IsURL requires a valid absolute URL with both scheme and host.
func IsURL() Check[string] {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				if strings.TrimSpace(value) == "" {
					return false
				}

				u, err := url.ParseRequestURI(value)
				if err != nil {
					return false
				}
				return u.Scheme != "" && u.Host != ""
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be a valid URL",
				TranslationKey: "validation.url",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		}
	}
}
