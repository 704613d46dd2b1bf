package status

// Service exposes a shared Registry through the service hub
type Service struct {
	registry *Registry
}

func NewService() *Service {
	return &Service{registry: NewRegistry()}
}

func (s *Service) Name() string { return "status" }

func (s *Service) Dependencies() []string { return nil }

func (s *Service) Init(args ...any) error { return nil }

func (s *Service) Start() error { return nil }

func (s *Service) Stop() error { return nil }

// Registry returns the shared statistics registry
func (s *Service) Registry() *Registry {
	return s.registry
}
