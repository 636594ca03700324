package schemas

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flameshq/flames/internal/domain"
)

func TestValidateJSON(t *testing.T) {
	catalog := NewCatalog()

	rec, err := catalog.ValidateJSON("user", []byte(`{"name":"Ada","email":"ada","address":"London","age":36}`))
	if err != nil {
		t.Fatalf("ValidateJSON: %v", err)
	}
	if u := rec.(*domain.User); u.Age == nil || *u.Age != 36 {
		t.Errorf("expected age 36, got %v", u.Age)
	}

	_, err = catalog.ValidateJSON("user", []byte(`{"name":"Ada","email":"ada","address":"London","age":36.5}`))
	if errs := fieldErrors(t, err); !errs.Has("age") {
		t.Errorf("expected age error, got %v", errs)
	}

	for _, body := range []string{
		`{"name":`, `[]`, `null`, `{"name":"a"} {}`, `"user"`,
		`{"name":"Ada","email":"a","address":"L"}}`,
		`{"name":"Ada","email":"a","address":"L"}]`,
		`{"name":"Ada","email":"a","address":"L"} x`,
	} {
		if _, err := catalog.ValidateJSON("user", []byte(body)); !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("%s: expected ErrMalformedDocument, got %v", body, err)
		}
	}

	if _, err := catalog.ValidateJSON("blogs", []byte(`{}`)); !errors.Is(err, ErrUnknownCollection) {
		t.Errorf("expected ErrUnknownCollection, got %v", err)
	}
}

func TestValidateDocumentRoundTrip(t *testing.T) {
	catalog := NewCatalog()
	note := "Looking to pilot"
	stored := &domain.DemoRequest{
		FullName:    "Alex Morgan",
		WorkEmail:   "alex@bank.com",
		CompanyName: "Global Bank",
		Industry:    domain.IndustryFintech,
		Message:     &note,
		Consent:     true,
	}
	raw, err := bson.Marshal(stored)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	rec, err := catalog.ValidateDocument("demorequest", raw)
	if err != nil {
		t.Fatalf("ValidateDocument: %v", err)
	}
	got := rec.(*domain.DemoRequest)
	if got.Industry != domain.IndustryFintech || got.Message == nil || *got.Message != note || got.RoleTitle != nil {
		t.Errorf("unexpected record %+v", got)
	}
}

func TestValidateDocumentStorageTypes(t *testing.T) {
	catalog := NewCatalog()
	price, err := primitive.ParseDecimal128("12.50")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := bson.Marshal(bson.M{
		"_id":      primitive.NewObjectID(),
		"title":    "Audit pack",
		"price":    price,
		"category": "compliance",
		"in_stock": false,
	})
	if err != nil {
		t.Fatal(err)
	}
	rec, err := catalog.ValidateDocument("product", raw)
	if err != nil {
		t.Fatalf("ValidateDocument: %v", err)
	}
	p := rec.(*domain.Product)
	if p.Price != 12.5 || p.InStock {
		t.Errorf("unexpected record %+v", p)
	}

	raw, _ = bson.Marshal(bson.M{"name": "Ada", "email": "ada", "address": "London", "age": int64(130)})
	_, err = catalog.ValidateDocument("user", raw)
	if errs := fieldErrors(t, err); !errs.Has("age") {
		t.Errorf("expected age error, got %v", errs)
	}

	if _, err := catalog.ValidateDocument("user", bson.Raw{0x01}); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected ErrMalformedDocument, got %v", err)
	}
}
