package viacep

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"remedios-api/internal/platform/httpclient"
	"remedios-api/internal/ports/postal"
)

const DefaultBaseURL = "https://viacep.com.br"

type Config struct {
	// BaseURL vacío usa DefaultBaseURL.
	BaseURL string
	Timeout time.Duration
}

// Client implementa postal.Lookup contra ViaCEP. Sin auth, sin retry, sin cache.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	hc, err := httpclient.New(base, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("viacep: %w", err)
	}
	return &Client{http: hc}, nil
}

// response es el payload de /ws/{cep}/json/. Un CEP inexistente llega con HTTP 200 y "erro": true.
type response struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Erro        flag   `json:"erro"`
}

// flag acepta true y "true"; ViaCEP devolvió ambos formatos en distintas versiones.
type flag bool

func (f *flag) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	*f = flag(strings.EqualFold(s, "true"))
	return nil
}

func (c *Client) Lookup(ctx context.Context, postalCode string) (postal.Address, error) {
	cep, ok := Normalize(postalCode)
	if !ok {
		return postal.Address{}, postal.ErrInvalidPostalCode
	}

	var out response
	if err := c.http.GetJSON(ctx, "/ws/"+cep+"/json/", &out); err != nil {
		return postal.Address{}, fmt.Errorf("%w: %v", postal.ErrUpstream, err)
	}
	if out.Erro {
		return postal.Address{}, postal.ErrNotFound
	}

	return postal.Address{
		PostalCode: cep,
		Street:     strings.TrimSpace(out.Logradouro),
		District:   strings.TrimSpace(out.Bairro),
		City:       strings.TrimSpace(out.Localidade),
		State:      strings.TrimSpace(out.UF),
	}, nil
}

// Normalize deja solo dígitos y exige 8 (formato CEP).
func Normalize(postalCode string) (string, bool) {
	var sb strings.Builder
	for _, r := range postalCode {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	cep := sb.String()
	return cep, len(cep) == 8
}

var _ postal.Lookup = (*Client)(nil)
