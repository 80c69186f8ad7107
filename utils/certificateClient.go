package utils

import (
	"fmt"
	"time"

	"worksuite/config"

	"github.com/go-resty/resty/v2"
)

// CertificateClient calls the external certificate rendering service. It
// satisfies the learning service's CertificateGenerator interface.
type CertificateClient struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

// NewCertificateClient builds a client from the loaded configuration
func NewCertificateClient() *CertificateClient {
	return &CertificateClient{
		client:  resty.New().SetTimeout(15 * time.Second),
		baseURL: config.AppConfig.CertServiceURL,
		apiKey:  config.AppConfig.CertServiceKey,
	}
}

type certRenderRequest struct {
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	CourseTitle string `json:"course_title"`
	CompletedAt string `json:"completed_at"`
}

type certRenderResponse struct {
	Status bool `json:"status"`
	Data   struct {
		URL string `json:"url"`
	} `json:"data"`
	Message string `json:"message"`
}

// Generate asks the certificate service to render the artifact and returns
// its downloadable URL.
func (cc *CertificateClient) Generate(userName, userEmail, courseTitle string, completedAt time.Time) (string, error) {
	var result certRenderResponse

	resp, err := cc.client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+cc.apiKey).
		SetBody(certRenderRequest{
			UserName:    userName,
			UserEmail:   userEmail,
			CourseTitle: courseTitle,
			CompletedAt: completedAt.UTC().Format(time.RFC3339),
		}).
		SetResult(&result).
		Post(cc.baseURL + "certificates/render")
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != 200 || !result.Status {
		return "", fmt.Errorf("certificate service returned status %d: %s", resp.StatusCode(), result.Message)
	}
	return result.Data.URL, nil
}
