package api

import (
	"context"

	"github.com/wmimouni/voyagr-api/app/content"
	"github.com/wmimouni/voyagr-api/app/delivery"
	"github.com/wmimouni/voyagr-api/app/submission"
)

type ContactPipelineInterface interface {
	Run(ctx context.Context, inquiry submission.Inquiry) error
}

type DevRequestPipelineInterface interface {
	Run(ctx context.Context, req submission.DevRequest) (successes, failures []delivery.Outcome)
}

var _ ContactPipelineInterface = (*delivery.ContactPipeline)(nil)
var _ DevRequestPipelineInterface = (*delivery.DevRequestPipeline)(nil)

type Handler struct {
	contact ContactPipelineInterface
	devReq  DevRequestPipelineInterface
	store   *content.Store
}
