package app

import (
	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"
)

type PublishResult struct {
	HTMLURL string `json:"html_url"`
	RawURL  string `json:"raw_url"`
	Created bool   `json:"created"`
}

// Publisher performs an idempotent create-or-update of the processed
// pivot file in the remote repository.
type Publisher interface {
	Publish(ctx nova_ctx.Ctx, content []byte, message string) (*PublishResult, errs.Error)
}
