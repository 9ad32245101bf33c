package runconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mecenum/dagmec/runconfig"
	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestLoadConfigParsesFields() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "run.toml")
	body := `
timeout_seconds = 30.0
delay_log_path = "delays.csv"
max_dags = 100
output_dir = "out"
`
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o644))

	cfg, err := runconfig.LoadConfig(path)
	s.Require().NoError(err)
	s.Equal(30.0, cfg.TimeoutSeconds)
	s.Equal("delays.csv", cfg.DelayLogPath)
	s.Equal(int64(100), cfg.MaxDAGs)
	s.Equal("out", cfg.OutputDir)
}

func (s *ConfigSuite) TestLoadConfigDefaultsMaxDAGs() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "run.toml")
	s.Require().NoError(os.WriteFile(path, []byte(`timeout_seconds = 10.0`), 0o644))

	cfg, err := runconfig.LoadConfig(path)
	s.Require().NoError(err)
	s.Equal(int64(runconfig.DefaultMaxDAGs), cfg.MaxDAGs)
}

func (s *ConfigSuite) TestLoadConfigMissingFile() {
	_, err := runconfig.LoadConfig(filepath.Join(s.T().TempDir(), "missing.toml"))
	s.Error(err)
}
