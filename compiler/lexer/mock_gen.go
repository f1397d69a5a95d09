// File: lexer/mock_gen.go
package lexer

//go:generate mockgen -typed -source=./token.go -destination=../../internal/mocks/mock_source.go -package=mocks Source
