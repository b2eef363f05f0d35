package author

import "bookstore-api/pkg/repository"

// Repository is the generic entity repository instantiated for authors.
type Repository = repository.Repository[Author]

// RepositoryFactory opens a request-scoped Repository.
type RepositoryFactory = repository.Factory[Author]
