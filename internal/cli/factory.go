package cli

import (
	"fmt"

	"github.com/abdorrahmani/ristretto255-strobe/internal/config"
)

// ProcessorRegistry maps processor IDs to their creation functions.
type ProcessorRegistry map[int]ProcessorCreator

// ProcessorCreator is a function type that creates a new operation processor.
type ProcessorCreator func(cfg *config.Config) (OperationProcessor, error)

// OperationProcessorFactory implements ProcessorFactory for creating the
// protocol's operation processors.
type OperationProcessorFactory struct {
	config   *config.Config
	registry ProcessorRegistry
}

// NewOperationProcessorFactory creates a new processor factory.
func NewOperationProcessorFactory() *OperationProcessorFactory {
	factory := &OperationProcessorFactory{
		registry: make(ProcessorRegistry),
	}

	factory.RegisterProcessor(OptionDeriveKey, createDeriveKeyProcessor)
	factory.RegisterProcessor(OptionSign, createSignProcessor)
	factory.RegisterProcessor(OptionVerify, createVerifyProcessor)
	factory.RegisterProcessor(OptionSharedSecret, createSharedSecretProcessor)
	factory.RegisterProcessor(OptionBenchmark, createBenchmarkProcessor)

	return factory
}

// RegisterProcessor registers a new processor creator function.
func (f *OperationProcessorFactory) RegisterProcessor(id int, creator ProcessorCreator) {
	f.registry[id] = creator
}

// SetConfig sets the configuration for the factory.
func (f *OperationProcessorFactory) SetConfig(cfg *config.Config) {
	f.config = cfg
}

// CreateProcessor creates a processor based on the given choice.
func (f *OperationProcessorFactory) CreateProcessor(choice int) (OperationProcessor, error) {
	creator, exists := f.registry[choice]
	if !exists {
		return nil, fmt.Errorf("invalid processor choice: %d", choice)
	}

	return creator(f.config)
}

func createDeriveKeyProcessor(cfg *config.Config) (OperationProcessor, error) {
	return NewDeriveKeyProcessor(cfg), nil
}

func createSignProcessor(cfg *config.Config) (OperationProcessor, error) {
	return NewSignProcessor(cfg), nil
}

func createVerifyProcessor(_ *config.Config) (OperationProcessor, error) {
	return NewVerifyProcessor(), nil
}

func createSharedSecretProcessor(cfg *config.Config) (OperationProcessor, error) {
	return NewSharedSecretProcessor(cfg), nil
}

func createBenchmarkProcessor(_ *config.Config) (OperationProcessor, error) {
	return NewBenchmarkProcessor(), nil
}
