package apiclient

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newRequestForTesting(t *testing.T) *Request {
	URL, err := url.Parse("https://example.com/api/v1/resource")
	if err != nil {
		t.Fatal(err)
	}
	return newRequest(URL)
}

func TestNewRequestDefaults(t *testing.T) {
	req := newRequestForTesting(t)
	if req.Method != MethodGet {
		t.Fatal("unexpected default method", req.Method)
	}
	if len(req.Header) != 0 {
		t.Fatal("expected no headers")
	}
	if req.Body != nil {
		t.Fatal("expected nil body")
	}
	if req.Err() != nil {
		t.Fatal("expected nil error")
	}
}

func TestRequestSetMethod(t *testing.T) {
	req := newRequestForTesting(t)
	if out := req.SetMethod(MethodPost); out != req {
		t.Fatal("expected the same request instance")
	}
	if req.Method != MethodPost {
		t.Fatal("unexpected method", req.Method)
	}
}

func TestRequestSetHeader(t *testing.T) {
	t.Run("setting a new field", func(t *testing.T) {
		req := newRequestForTesting(t)
		if out := req.SetHeader("X-Custom", "antani"); out != req {
			t.Fatal("expected the same request instance")
		}
		if value := req.Header.Get("X-Custom"); value != "antani" {
			t.Fatal("unexpected value", value)
		}
	})

	t.Run("the last write wins", func(t *testing.T) {
		req := newRequestForTesting(t)
		req.SetHeader("X-Custom", "antani").SetHeader("X-Custom", "mascetti")
		if value := req.Header.Get("X-Custom"); value != "mascetti" {
			t.Fatal("unexpected value", value)
		}
		if len(req.Header.Values("X-Custom")) != 1 {
			t.Fatal("expected exactly one value")
		}
	})

	t.Run("field names are case-insensitive", func(t *testing.T) {
		req := newRequestForTesting(t)
		req.SetHeader("content-type", "text/plain")
		req.SetHeader("Content-Type", "application/json")
		if value := req.Header.Get("Content-Type"); value != "application/json" {
			t.Fatal("unexpected value", value)
		}
	})
}

func TestRequestSetAuthorization(t *testing.T) {
	req := newRequestForTesting(t)
	if out := req.SetAuthorization("deadbeef"); out != req {
		t.Fatal("expected the same request instance")
	}
	if value := req.Header.Get("Authorization"); value != "deadbeef" {
		t.Fatal("unexpected value", value)
	}
}

func TestRequestSetBody(t *testing.T) {
	t.Run("with raw bytes", func(t *testing.T) {
		req := newRequestForTesting(t)
		if out := req.SetBody([]byte("deadbeef")); out != req {
			t.Fatal("expected the same request instance")
		}
		if diff := cmp.Diff([]byte("deadbeef"), req.Body); diff != "" {
			t.Fatal(diff)
		}
		if req.Err() != nil {
			t.Fatal("expected nil error")
		}
	})

	t.Run("with a structured value", func(t *testing.T) {
		input := map[string]string{"msg": "antani"}
		req := newRequestForTesting(t)
		req.SetBody(input)
		if req.Err() != nil {
			t.Fatal("expected nil error")
		}
		var got map[string]string
		if err := json.Unmarshal(req.Body, &got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(input, got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with a sequence of structured values", func(t *testing.T) {
		input := []map[string]string{{"msg": "antani"}, {"msg": "mascetti"}}
		req := newRequestForTesting(t)
		req.SetBody(input)
		if req.Err() != nil {
			t.Fatal("expected nil error")
		}
		var got []map[string]string
		if err := json.Unmarshal(req.Body, &got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(input, got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with nil", func(t *testing.T) {
		req := newRequestForTesting(t)
		req.SetBody([]byte("deadbeef")).SetBody(nil)
		if req.Body != nil {
			t.Fatal("expected nil body")
		}
		if req.Err() != nil {
			t.Fatal("expected nil error")
		}
	})

	t.Run("a new body always discards the previous one", func(t *testing.T) {
		req := newRequestForTesting(t)
		req.SetBody([]byte("deadbeef")).SetBody([]byte("feedface"))
		if diff := cmp.Diff([]byte("feedface"), req.Body); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with an unserializable value", func(t *testing.T) {
		req := newRequestForTesting(t)
		req.SetBody([]byte("deadbeef")).SetBody(make(chan int))
		if req.Body != nil {
			t.Fatal("expected the body to be left unset")
		}
		if !errors.Is(req.Err(), ErrCannotSerializeBody) {
			t.Fatal("unexpected error", req.Err())
		}
	})

	t.Run("a successful SetBody clears a previous sticky error", func(t *testing.T) {
		req := newRequestForTesting(t)
		req.SetBody(make(chan int)).SetBody([]byte("deadbeef"))
		if req.Err() != nil {
			t.Fatal("expected nil error", req.Err())
		}
		if diff := cmp.Diff([]byte("deadbeef"), req.Body); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestRequestChaining(t *testing.T) {
	req := newRequestForTesting(t)
	out := req.SetMethod(MethodPut).SetAuthorization("deadbeef").SetBody([]byte("{}"))
	if out != req {
		t.Fatal("expected the same request instance")
	}
	if req.Method != MethodPut {
		t.Fatal("unexpected method", req.Method)
	}
	if req.Header.Get("Authorization") != "deadbeef" {
		t.Fatal("unexpected authorization")
	}
	if diff := cmp.Diff([]byte("{}"), req.Body); diff != "" {
		t.Fatal(diff)
	}
}
