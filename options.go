package solstudio

// Option configures a Studio at construction time.
type Option func(*Studio)

// WithConfig replaces the stock payment configuration.
func WithConfig(cfg Config) Option {
	return func(s *Studio) {
		s.cfg = cfg
	}
}

// WithDeployer substitutes the deployment step. The default is a
// SimulatedDeployer with DefaultDeployDelay.
func WithDeployer(d Deployer) Option {
	return func(s *Studio) {
		s.deployer = d
	}
}

// WithCompiler substitutes the compilation step. The default is a
// StubCompiler with DefaultCompileDelay.
func WithCompiler(c Compiler) Option {
	return func(s *Studio) {
		s.compiler = c
	}
}

// WithSeedFiles replaces the initial source files. The first seed file is
// selected; with no seed files the store starts empty.
func WithSeedFiles(files ...FileItem) Option {
	return func(s *Studio) {
		s.seed = files
	}
}
