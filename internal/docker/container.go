package docker

import (
	"context"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"

	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// Compose label keys applied by docker compose to every container it
// creates. They are the discovery mechanism for the stack's containers;
// this tool keeps no state of its own.
const (
	// LabelComposeProject identifies the compose project a container
	// belongs to.
	LabelComposeProject = "com.docker.compose.project"

	// LabelComposeService identifies which service definition a
	// container was created from.
	LabelComposeService = "com.docker.compose.service"
)

// ListStackContainers queries the Docker daemon for all containers that
// belong to the given compose project, including stopped ones. The filter
// runs server-side via the compose project label.
func ListStackContainers(ctx context.Context, cli *Client, project string) ([]model.ServiceState, error) {
	filterArgs := filters.NewArgs(
		filters.Arg("label", LabelComposeProject+"="+project),
	)

	containers, err := cli.Inner().ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filterArgs,
	})
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitDockerUnavailable,
			"failed to list Docker containers",
			err,
		)
	}

	result := make([]model.ServiceState, 0, len(containers))
	for _, c := range containers {
		result = append(result, containerToState(c))
	}

	return result, nil
}

// containerToState converts a Docker API container struct to the domain
// model. Pure mapping, no side effects.
func containerToState(c types.Container) model.ServiceState {
	// Docker returns container names with a leading "/" that is an API
	// artifact, not meaningful to users.
	name := ""
	if len(c.Names) > 0 {
		name = strings.TrimPrefix(c.Names[0], "/")
	}

	return model.ServiceState{
		ContainerID:   c.ID,
		ContainerName: name,
		ServiceName:   c.Labels[LabelComposeService],
		State:         c.State,
		Status:        c.Status,
	}
}
