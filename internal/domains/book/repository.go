package book

import "bookstore-api/pkg/repository"

// Repository is the generic entity repository instantiated for books.
type Repository = repository.Repository[Book]

// RepositoryFactory opens a request-scoped Repository.
type RepositoryFactory = repository.Factory[Book]
