// internal/model/movie.go
package model

// Movie is the record written to the movie table. The payload under
// pelicula_datos is opaque: whatever the caller sent is stored and returned
// unshaped. A Movie is written once and never read back or mutated.
type Movie struct {
	TenantID string `json:"tenant_id" dynamodbav:"tenant_id"`
	ID       string `json:"id" dynamodbav:"id"`
	Datos    any    `json:"pelicula_datos" dynamodbav:"pelicula_datos"`
}
