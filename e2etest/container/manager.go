package container

import (
	"fmt"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sdupi-network/sdupi-token-core/testutil"
)

const mongoPort = "27017/tcp"

// MongoCredentials are the root credentials the mongo container is
// provisioned with.
type MongoCredentials struct {
	Username string
	Password string
	DbName   string
}

// Manager provisions the docker containers backing an e2e run and purges
// them when the test finishes.
type Manager struct {
	cfg       ImageConfig
	pool      *dockertest.Pool
	resources []*dockertest.Resource
}

// NewManager creates a new Manager. Resources are purged automatically
// through t.Cleanup.
func NewManager(t *testing.T) (*Manager, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("failed to create dockertest pool: %w", err)
	}

	m := &Manager{
		cfg:  NewImageConfig(),
		pool: pool,
	}
	t.Cleanup(func() {
		m.ClearResources(t)
	})

	return m, nil
}

// RunMongoResource starts a mongo container and returns the host port
// mapped to mongo inside it.
func (m *Manager) RunMongoResource(creds MongoCredentials) (string, error) {
	// container names must be unique, so append a random suffix in case
	// an old container is still being torn down
	suffix, err := testutil.RandomAlphaNum(3)
	if err != nil {
		return "", err
	}

	resource, err := m.pool.RunWithOptions(&dockertest.RunOptions{
		Name:       "sdupi-e2e-mongo-" + suffix,
		Repository: m.cfg.MongoRepository,
		Tag:        m.cfg.MongoVersion,
		Env: []string{
			"MONGO_INITDB_ROOT_USERNAME=" + creds.Username,
			"MONGO_INITDB_ROOT_PASSWORD=" + creds.Password,
			"MONGO_INITDB_DATABASE=" + creds.DbName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("failed to run mongo container: %w", err)
	}
	m.resources = append(m.resources, resource)

	return resource.GetPort(mongoPort), nil
}

// ClearResources purges every container started by this manager.
func (m *Manager) ClearResources(t *testing.T) {
	for _, resource := range m.resources {
		if err := m.pool.Purge(resource); err != nil {
			t.Logf("failed to purge resource %s: %v", resource.Container.Name, err)
		}
	}
	m.resources = nil
}
