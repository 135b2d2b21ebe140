package translate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingopipe/internal/config"
	"lingopipe/internal/translate"
)

func baseConfig() config.Translator {
	cfg := config.Default().Translator
	cfg.OpenAI.APIKey = "test"
	cfg.DeepL.AuthKey = "test"
	cfg.Lara.AccessKeyID = "id"
	cfg.Lara.AccessKeySecret = "secret"
	return cfg
}

func TestNewSelectsProviderByCode(t *testing.T) {
	for _, code := range []string{"g", "d", "l", "n"} {
		if _, err := translate.New(baseConfig(), code); err != nil {
			t.Errorf("New(%q) failed: %v", code, err)
		}
	}
	if _, err := translate.New(baseConfig(), "x"); err == nil {
		t.Error("expected error for unknown code")
	}
}

func TestNewRequiresCredentials(t *testing.T) {
	cfg := config.Default().Translator
	for _, code := range []string{"g", "d", "l"} {
		if _, err := translate.New(cfg, code); err == nil {
			t.Errorf("New(%q) succeeded without credentials", code)
		}
	}
	// The none provider needs nothing.
	if _, err := translate.New(cfg, "n"); err != nil {
		t.Errorf("New(%q) failed: %v", "n", err)
	}
}

func TestNoneProviderReturnsEmptyText(t *testing.T) {
	tr, err := translate.New(baseConfig(), "n")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got, err := tr.Translate(context.Background(), "Hello world.")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty translation, got %q", got)
	}
}

func TestDeepLTranslator(t *testing.T) {
	var gotAuth, gotTarget, gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotTarget = r.PostFormValue("target_lang")
		gotText = r.PostFormValue("text")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"translations": []map[string]string{{"text": "Привет, мир."}},
		})
	}))
	defer server.Close()

	cfg := baseConfig()
	cfg.DeepL.BaseURL = server.URL
	cfg.TargetLanguage = "ru"

	tr, err := translate.New(cfg, "d")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got, err := tr.Translate(context.Background(), "Hello, world.")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "Привет, мир." {
		t.Fatalf("unexpected translation: %q", got)
	}
	if gotAuth != "DeepL-Auth-Key test" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotTarget != "RU" {
		t.Fatalf("unexpected target lang: %q", gotTarget)
	}
	if gotText != "Hello, world." {
		t.Fatalf("unexpected text: %q", gotText)
	}
}

func TestDeepLTranslatorSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := baseConfig()
	cfg.DeepL.BaseURL = server.URL
	tr, err := translate.New(cfg, "d")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := tr.Translate(context.Background(), "Hello"); err == nil {
		t.Fatal("expected error from failing server")
	}
}

func TestLaraTranslator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req struct {
			Text   string `json:"text"`
			Target string `json:"target"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"translation": "Привет " + req.Target})
	}))
	defer server.Close()

	cfg := baseConfig()
	cfg.Lara.BaseURL = server.URL
	cfg.TargetLanguage = "ru"
	tr, err := translate.New(cfg, "l")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got, err := tr.Translate(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "Привет ru" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestSuffix(t *testing.T) {
	cases := map[string]string{"g": "gpt", "d": "deepl", "l": "lara", "n": "en", "z": "hf"}
	for code, want := range cases {
		if got := translate.Suffix(code); got != want {
			t.Errorf("Suffix(%q) = %q, want %q", code, got, want)
		}
	}
}
