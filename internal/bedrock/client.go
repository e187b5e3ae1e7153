package bedrock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tf-trivia/internal/llm"
)

const (
	DefaultRegion   = "us-east-1"
	defaultTimeout  = 30 * time.Second
	contentTypeJSON = "application/json"
)

// InvokeModelAPI is the slice of the Bedrock Runtime client used here.
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Options configures New.
type Options struct {
	Region            string
	Timeout           time.Duration
	VerifyCredentials bool
}

// InitError records why the backend handle could not be built.
type InitError struct {
	Region string
	Err    error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("bedrock init (%s): %v", e.Region, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// Client holds the Bedrock Runtime handle, or the fact that there is none.
// Fields are set once by the constructor and only read afterwards.
type Client struct {
	api       InvokeModelAPI
	available bool
	log       *slog.Logger
	tracer    trace.Tracer
}

// loadConfig is swapped in tests.
var loadConfig = config.LoadDefaultConfig

// New builds the handle for the configured region. It never fails: any error
// is logged and yields a client that reports Available() == false.
func New(ctx context.Context, opts Options, log *slog.Logger) *Client {
	if opts.Region == "" {
		opts.Region = DefaultRegion
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	api, err := buildAPI(ctx, opts)
	if err != nil {
		log.Warn("could not initialize bedrock client; serving fallbacks", "err", err, "region", opts.Region)
		return &Client{log: log, tracer: otel.Tracer("tf-trivia/bedrock")}
	}
	log.Info("bedrock client ready", "region", opts.Region)
	return NewWithAPI(api, log)
}

// NewWithAPI wraps an existing API implementation as an available client.
func NewWithAPI(api InvokeModelAPI, log *slog.Logger) *Client {
	return &Client{
		api:       api,
		available: api != nil,
		log:       log,
		tracer:    otel.Tracer("tf-trivia/bedrock"),
	}
}

func buildAPI(ctx context.Context, opts Options) (InvokeModelAPI, error) {
	cfg, err := loadConfig(ctx,
		config.WithRegion(opts.Region),
		// single attempt; no SDK-level retries
		config.WithRetryMaxAttempts(1),
		config.WithHTTPClient(awshttp.NewBuildableClient().WithTimeout(opts.Timeout)),
	)
	if err != nil {
		return nil, &InitError{Region: opts.Region, Err: err}
	}
	if opts.VerifyCredentials {
		if cfg.Credentials == nil {
			return nil, &InitError{Region: opts.Region, Err: errors.New("no credentials provider")}
		}
		if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
			return nil, &InitError{Region: opts.Region, Err: fmt.Errorf("retrieve credentials: %w", err)}
		}
	}
	return bedrockruntime.NewFromConfig(cfg), nil
}

// Available reports whether the backend handle was constructed.
func (c *Client) Available() bool {
	return c != nil && c.available
}

// Invoke sends an encoded request and returns the raw response body.
func (c *Client) Invoke(ctx context.Context, req llm.WireRequest) ([]byte, error) {
	if !c.Available() {
		return nil, &llm.InvocationError{ModelID: req.ModelID, Err: llm.ErrBackendUnavailable}
	}

	ctx, span := c.tracer.Start(ctx, "bedrock.InvokeModel",
		trace.WithAttributes(attribute.String("bedrock.model_id", req.ModelID)))
	defer span.End()

	start := time.Now()
	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(req.ModelID),
		Body:        req.Body,
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
	})
	invocationDuration.WithLabelValues(req.ModelID).Observe(time.Since(start).Seconds())
	if err != nil {
		invocationFailures.WithLabelValues(req.ModelID).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "invoke failed")
		return nil, &llm.InvocationError{ModelID: req.ModelID, Err: err}
	}
	if out == nil {
		invocationFailures.WithLabelValues(req.ModelID).Inc()
		span.SetStatus(codes.Error, "empty output")
		return nil, &llm.InvocationError{ModelID: req.ModelID, Err: errors.New("nil output")}
	}
	c.log.Debug("bedrock invocation complete", "model", req.ModelID, "bytes", len(out.Body), "duration_ms", time.Since(start).Milliseconds())
	return out.Body, nil
}
