// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./compilation.go -destination=../mocks/mock_compilation_repository.go -package=mocks CompilationRepositoryIface
