package docker

import (
	"context"

	"github.com/docker/docker/api/types/filters"

	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// PruneSystem removes stopped containers, dangling images and unused
// networks from the Docker host, mirroring what `docker system prune -f`
// covers. Volumes are not touched here: the cleanup command removes the
// stack's own volumes through compose down -v, and pruning volumes
// host-wide would destroy data belonging to unrelated projects.
//
// The three prune calls are host-wide by nature of the underlying Docker
// operation, which is why the cleanup command confirms with the operator
// before calling this.
func PruneSystem(ctx context.Context, cli *Client) (model.PruneReport, error) {
	var report model.PruneReport

	containersReport, err := cli.Inner().ContainersPrune(ctx, filters.NewArgs())
	if err != nil {
		return report, model.WrapCLIError(
			model.ExitDockerUnavailable,
			"failed to prune stopped containers",
			err,
		)
	}
	report.ContainersDeleted = len(containersReport.ContainersDeleted)
	report.SpaceReclaimed += containersReport.SpaceReclaimed

	// dangling=true restricts image pruning to untagged layers, the same
	// default docker system prune uses without --all.
	imagesReport, err := cli.Inner().ImagesPrune(ctx, filters.NewArgs(
		filters.Arg("dangling", "true"),
	))
	if err != nil {
		return report, model.WrapCLIError(
			model.ExitDockerUnavailable,
			"failed to prune dangling images",
			err,
		)
	}
	report.ImagesDeleted = len(imagesReport.ImagesDeleted)
	report.SpaceReclaimed += imagesReport.SpaceReclaimed

	networksReport, err := cli.Inner().NetworksPrune(ctx, filters.NewArgs())
	if err != nil {
		return report, model.WrapCLIError(
			model.ExitDockerUnavailable,
			"failed to prune unused networks",
			err,
		)
	}
	report.NetworksDeleted = len(networksReport.NetworksDeleted)

	return report, nil
}
