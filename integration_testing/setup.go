package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/ironlog/ironlog/internal"
	"github.com/ironlog/ironlog/internal/config"
	"github.com/ironlog/ironlog/pkg"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	testAdminUsername = "admin"
	testAdminPassword = "admintest"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) *Suite {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err.Error())
	}

	adminPasswordHash, err := pkg.HashPassword(testAdminPassword)
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to hash admin password: %s", err.Error())
	}

	cfg := &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		PostgresHost:                "localhost",
		PostgresPort:                pgPort,
		PostgresDBName:              "ironlog_test",
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "2113",
		LoginRateLimitAllowedPerMin: 100,
	}

	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			AdminUsername:           testAdminUsername,
			AdminPasswordHash:       adminPasswordHash,
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to create server: %s", err.Error())
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)
	suite.teardown = append(suite.teardown, suite.server.GracefulShutdown)

	return suite
}

func (s *Suite) cleanup() {
	for i := len(s.teardown) - 1; i >= 0; i-- {
		s.teardown[i]()
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis-ironlog-test",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=ironlog_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/ironlog_test?sslmode=disable", pgPort)

	// schema itself is created by the embedded migrations on server start
	err = s.dockerPool.Retry(func() error {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		s.DB = db
		return db.Ping()
	})
	if err != nil {
		return "", fmt.Errorf("connect to postgres: %s", err)
	}

	return pgPort, nil
}

// AddUser inserts a user row directly, user management has no HTTP surface.
func (s *Suite) AddUser(username string) (int, error) {
	var id int
	err := s.DB.QueryRow(
		`INSERT INTO users (username) VALUES ($1) RETURNING id;`,
		username,
	).Scan(&id)
	return id, err
}

func doRequest(req *http.Request) (int, []byte, error) {
	req.Header.Set("User-Agent", "test-agent")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
