package network

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

const suiteLabel = "configurator.suite"

// Network is an attachable bridge network shared by the containers of one
// integration suite. A nil *Network is valid and behaves as "no network".
type Network struct {
	dn *testcontainers.DockerNetwork
}

func NewNetwork(ctx context.Context, suite string) (*Network, error) {
	dn, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{suiteLabel: suite}),
	)
	if err != nil {
		return nil, fmt.Errorf("create suite network %q: %w", suite, err)
	}

	return &Network{dn: dn}, nil
}

// Name returns "" for a nil network so callers can pass it straight to the
// container options, which skip empty names.
func (n *Network) Name() string {
	if n == nil || n.dn == nil {
		return ""
	}
	return n.dn.Name
}

func (n *Network) Remove(ctx context.Context) error {
	if n == nil || n.dn == nil {
		return nil
	}
	if err := n.dn.Remove(ctx); err != nil {
		return fmt.Errorf("remove suite network %s: %w", n.dn.Name, err)
	}
	return nil
}
