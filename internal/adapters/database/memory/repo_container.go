package memory

import portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"

// NewRepositoryProvider builds in-process repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo: NewRateRepository(),
	}
}
