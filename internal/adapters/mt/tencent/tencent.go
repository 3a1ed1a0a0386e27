package tencent

import (
	"context"
	"errors"
	"strings"

	"rubick-translator/internal/domain"
	"rubick-translator/internal/lang"
	"rubick-translator/internal/ports"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	tcerr "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/errors"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	tmt "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/tmt/v20180321"
)

const (
	DefaultRegion   = "ap-beijing"
	DefaultEndpoint = "tmt.tencentcloudapi.com"
)

// textTranslator is the slice of the TMT client the adapter needs.
type textTranslator interface {
	TextTranslateWithContext(ctx context.Context, request *tmt.TextTranslateRequest) (*tmt.TextTranslateResponse, error)
}

type Options struct {
	SecretID  string
	SecretKey string
	Region    string
	Endpoint  string
}

type Client struct {
	opts   Options
	newAPI func(Options) (textTranslator, error)
}

func New(opts Options) *Client {
	if opts.Region == "" {
		opts.Region = DefaultRegion
	}
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	return &Client{opts: opts, newAPI: newTMTClient}
}

func newTMTClient(o Options) (textTranslator, error) {
	cred := common.NewCredential(o.SecretID, o.SecretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = o.Endpoint
	return tmt.NewClient(cred, o.Region, cpf)
}

func (c *Client) Kind() domain.ProviderKind { return domain.ProviderTencent }

func (c *Client) Translate(ctx context.Context, req ports.ProviderRequest) (domain.TranslationResult, error) {
	if strings.TrimSpace(c.opts.SecretID) == "" {
		return domain.TranslationResult{}, &domain.ConfigError{Provider: c.Kind(), Field: "tencent_SID"}
	}
	if strings.TrimSpace(c.opts.SecretKey) == "" {
		return domain.TranslationResult{}, &domain.ConfigError{Provider: c.Kind(), Field: "tencent_SKEY"}
	}
	api, err := c.newAPI(c.opts)
	if err != nil {
		return domain.TranslationResult{}, &domain.ConfigError{Provider: c.Kind(), Field: "client", Reason: err.Error()}
	}

	source := req.Source
	if source == "" {
		source = domain.SourceAuto
	}
	target := req.Target
	if target == "" {
		target = "zh"
	}
	tr := tmt.NewTextTranslateRequest()
	tr.SourceText = common.StringPtr(req.Text)
	tr.Source = common.StringPtr(source)
	tr.Target = common.StringPtr(target)
	tr.ProjectId = common.Int64Ptr(0)

	resp, err := api.TextTranslateWithContext(ctx, tr)
	if err != nil {
		return domain.TranslationResult{}, classify(err)
	}
	translated := ""
	if resp != nil && resp.Response != nil && resp.Response.TargetText != nil {
		translated = *resp.Response.TargetText
	}
	// The response's own Source field is not consulted.
	return domain.TranslationResult{
		Translated:     translated,
		DetectedSource: lang.ResolveDetected(source, req.Text),
	}, nil
}

// classify maps rejected credentials to ConfigError and everything else to NetworkError.
func classify(err error) error {
	var sdkErr *tcerr.TencentCloudSDKError
	if errors.As(err, &sdkErr) && strings.HasPrefix(sdkErr.GetCode(), "AuthFailure") {
		return &domain.ConfigError{Provider: domain.ProviderTencent, Field: "tencent_SID/tencent_SKEY", Reason: sdkErr.GetMessage()}
	}
	return &domain.NetworkError{Provider: domain.ProviderTencent, Err: err}
}
