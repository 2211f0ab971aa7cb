package collab

import (
	"context"
	"net/http"
	"net/url"

	"closeout-market/internal/domain/store"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/shared"
)

// validStatus is the registry's code for "details match an active business".
const validStatus = "01"

var ErrVerifierDisabled = errs.New("business verification is not configured")

type VerifierClient struct {
	endpoint string
	client   *http.Client
}

func NewBusinessVerifier(cfg config.CollaboratorsConfig) (shared.BusinessVerifier, error) {
	if cfg.VerifierURL == "" {
		return DisabledVerifier{}, nil
	}
	u, err := url.Parse(cfg.VerifierURL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid verifier url")
	}
	if cfg.VerifierAPIKey != "" {
		q := u.Query()
		q.Set("serviceKey", cfg.VerifierAPIKey)
		u.RawQuery = q.Encode()
	}
	return &VerifierClient{
		endpoint: u.String(),
		client:   &http.Client{Timeout: cfg.VerifierTimeout},
	}, nil
}

type verifyBusiness struct {
	BizNumber string `json:"b_no"`
	StartDate string `json:"start_dt"`
	OwnerName string `json:"p_nm"`
}

type verifyRequest struct {
	Businesses []verifyBusiness `json:"businesses"`
}

type verifyResponse struct {
	Data []struct {
		BizNumber string `json:"b_no"`
		Valid     string `json:"valid"`
	} `json:"data"`
}

func (v *VerifierClient) Verify(ctx context.Context, reg store.Registration) (bool, error) {
	var out verifyResponse
	err := postJSON(ctx, v.client, v.endpoint, nil, verifyRequest{
		Businesses: []verifyBusiness{{
			BizNumber: reg.BizNumber,
			StartDate: reg.StartDate,
			OwnerName: reg.OwnerName,
		}},
	}, &out)
	if err != nil {
		return false, err
	}
	if len(out.Data) == 0 {
		return false, nil
	}
	return out.Data[0].Valid == validStatus, nil
}

// DisabledVerifier fails every call so stores stay unverified until a verifier is configured.
type DisabledVerifier struct{}

func (DisabledVerifier) Verify(context.Context, store.Registration) (bool, error) {
	return false, ErrVerifierDisabled
}
