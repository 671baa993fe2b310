package mock

import (
	"context"

	"github.com/fwojciec/msdocs"
)

var _ msdocs.BuildInfoService = (*BuildInfoService)(nil)

// BuildInfoService is a mock implementation of msdocs.BuildInfoService.
type BuildInfoService struct {
	BuildInfoFn    func(ctx context.Context) (*msdocs.BuildInfo, error)
	SetBuildInfoFn func(ctx context.Context, info *msdocs.BuildInfo) error
}

func (s *BuildInfoService) BuildInfo(ctx context.Context) (*msdocs.BuildInfo, error) {
	return s.BuildInfoFn(ctx)
}

func (s *BuildInfoService) SetBuildInfo(ctx context.Context, info *msdocs.BuildInfo) error {
	return s.SetBuildInfoFn(ctx, info)
}
