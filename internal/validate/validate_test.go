package validate

import (
	"testing"

	"github.com/skadvisory/findna/internal/catalog"
)

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{"empty", "", false, "Please enter a name."},
		{"whitespace only", "   ", false, "Please enter a name."},
		{"single char", "J", false, "Name must be at least 2 characters."},
		{"simple", "Wei Ming", true, ""},
		{"hyphenated", "Mary-Jane", true, ""},
		{"apostrophe", "O'Brien", true, ""},
		{"initials", "J. R. Tan", true, ""},
		{"accented", "Søren Müller", true, ""},
		{"cjk", "陈伟明", true, ""},
		{"digits", "John2", false, "Name can only contain letters, spaces, hyphens, and apostrophes."},
		{"symbols", "Tan@Home", false, "Name can only contain letters, spaces, hyphens, and apostrophes."},
		{"padded valid", "  Alice  ", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Name(tt.input)
			if got.Valid != tt.valid {
				t.Errorf("Name(%q).Valid = %v, want %v", tt.input, got.Valid, tt.valid)
			}
			if !tt.valid && got.Message != tt.message {
				t.Errorf("Name(%q).Message = %q, want %q", tt.input, got.Message, tt.message)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"empty", "", false},
		{"plain", "alice@example.com", true},
		{"subdomain", "a.b@mail.example.sg", true},
		{"no at", "alice.example.com", false},
		{"no domain dot", "alice@example", false},
		{"short tld", "alice@example.c", false},
		{"two char tld", "alice@example.co", true},
		{"space inside", "alice smith@example.com", false},
		{"padded", "  alice@example.com  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Email(tt.input); got.Valid != tt.valid {
				t.Errorf("Email(%q).Valid = %v, want %v", tt.input, got.Valid, tt.valid)
			}
		})
	}

	if got := Email(""); got.Message != "Please enter an email address." {
		t.Errorf("empty message = %q", got.Message)
	}
	if got := Email("nope"); got.Message != "Please enter a valid email address." {
		t.Errorf("invalid message = %q", got.Message)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{"empty", "", false, "Please enter your mobile number."},
		{"valid 9", "91234567", true, ""},
		{"valid 8", "81234567", true, ""},
		{"with spaces", "9123 4567", true, ""},
		{"with dashes", "9123-4567", true, ""},
		{"plus country code", "+6591234567", false, "Please enter 8 digits only, without +65."},
		{"bare country code", "6591234567", false, "Please enter 8 digits only, without +65."},
		{"too short", "9123456", false, "Mobile number must be exactly 8 digits."},
		{"too long no prefix", "912345678", false, "Mobile number must be exactly 8 digits."},
		{"starts with 7", "71234567", false, "Singapore mobile numbers start with 8 or 9."},
		{"starts with 6", "61234567", false, "Singapore mobile numbers start with 8 or 9."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phone(tt.input)
			if got.Valid != tt.valid {
				t.Errorf("Phone(%q).Valid = %v, want %v", tt.input, got.Valid, tt.valid)
			}
			if !tt.valid && got.Message != tt.message {
				t.Errorf("Phone(%q).Message = %q, want %q", tt.input, got.Message, tt.message)
			}
		})
	}
}

func TestFor(t *testing.T) {
	cases := []struct {
		q    catalog.Question
		want string
	}{
		{catalog.Question{Key: "clientName", Type: catalog.TypeText}, "name"},
		{catalog.Question{Key: "friendName", Type: catalog.TypeText}, "name"},
		{catalog.Question{Key: "clientEmail", Type: catalog.TypeEmail}, "email"},
		{catalog.Question{Key: "clientMobile", Type: catalog.TypePhone}, "phone"},
		{catalog.Question{Key: "successDefinition", Type: catalog.TypeText}, ""},
		{catalog.Question{Key: "lifeStage", Type: catalog.TypeSingle}, ""},
	}

	for _, c := range cases {
		fn := For(c.q)
		switch c.want {
		case "":
			if fn != nil {
				t.Errorf("For(%s): got validator, want none", c.q.Key)
			}
		case "name":
			if fn == nil || fn("J").Valid {
				t.Errorf("For(%s): want name validator", c.q.Key)
			}
		case "email":
			if fn == nil || fn("nope").Valid {
				t.Errorf("For(%s): want email validator", c.q.Key)
			}
		case "phone":
			if fn == nil || fn("123").Valid {
				t.Errorf("For(%s): want phone validator", c.q.Key)
			}
		}
	}
}
