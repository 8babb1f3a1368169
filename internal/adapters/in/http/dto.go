// Package http exposes the application over a Portuguese-facing REST API
// using echo. Handlers translate between wire DTOs and the application's
// commands and queries, and map domain errors onto HTTP status codes.
package http

import (
	"time"

	"frete/internal/core/application/usecases/queries"
	"frete/internal/core/domain/model/shipment"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest is the sign-up payload. Perfil selects the profile to
// create: "cliente" or "motorista".
type RegisterRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Perfil        string `json:"perfil"`
	Telefone      string `json:"telefone"`
	DocumentoID   string `json:"documento_id"`
	Endereco      string `json:"endereco"`
	CartaConducao string `json:"carta_conducao"`
}

// RegisterResponse returns the identifier of the created account.
type RegisterResponse struct {
	ID string `json:"id"`
}

// LoginRequest is the authentication payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateShipmentRequest is the shipment creation payload. Preco is
// optional: when absent the estimator quotes the price.
type CreateShipmentRequest struct {
	Titulo            string     `json:"titulo"`
	Descricao         string     `json:"descricao"`
	PesoKg            float64    `json:"peso_kg"`
	FotoRef           string     `json:"foto_ref"`
	Origem            string     `json:"origem"`
	Destino           string     `json:"destino"`
	CoordenadasOrigem string     `json:"coordenadas_origem"`
	CoordenadasDest   string     `json:"coordenadas_destino"`
	Categoria         string     `json:"categoria"`
	TipoServico       string     `json:"tipo_servico"`
	AgendadoPara      *time.Time `json:"agendado_para"`
	Escoltado         bool       `json:"escoltado"`
	Preco             *float64   `json:"preco"`
}

// ShipmentResponse is the wire representation of a shipment.
type ShipmentResponse struct {
	ID           string     `json:"id"`
	ClienteID    string     `json:"cliente_id"`
	MotoristaID  *string    `json:"motorista_id"`
	Titulo       string     `json:"titulo"`
	Descricao    string     `json:"descricao"`
	PesoKg       float64    `json:"peso_kg"`
	Origem       string     `json:"origem"`
	Destino      string     `json:"destino"`
	Categoria    string     `json:"categoria"`
	TipoServico  string     `json:"tipo_servico"`
	Preco        *float64   `json:"preco"`
	Status       string     `json:"status"`
	Escoltado    bool       `json:"escoltado"`
	AgendadoPara *time.Time `json:"agendado_para"`
	CriadoEm     time.Time  `json:"criado_em"`
}

// CreateVehicleRequest is the vehicle registration payload.
type CreateVehicleRequest struct {
	Modelo       string  `json:"modelo"`
	Matricula    string  `json:"matricula"`
	CapacidadeKg float64 `json:"capacidade_kg"`
}

// CreateVehicleResponse returns the identifier of the created vehicle.
type CreateVehicleResponse struct {
	ID string `json:"id"`
}

func shipmentResponseFromQuery(resp queries.ShipmentResponse) ShipmentResponse {
	var driverID *string
	if resp.DriverID != nil {
		s := resp.DriverID.String()
		driverID = &s
	}

	return ShipmentResponse{
		ID:           resp.ID.String(),
		ClienteID:    resp.ClientID.String(),
		MotoristaID:  driverID,
		Titulo:       resp.Title,
		Descricao:    resp.Description,
		PesoKg:       resp.WeightKg,
		Origem:       resp.Origin,
		Destino:      resp.Destination,
		Categoria:    resp.Category,
		TipoServico:  resp.ServiceType,
		Preco:        resp.Price,
		Status:       resp.Status,
		Escoltado:    resp.Escorted,
		AgendadoPara: resp.ScheduledAt,
		CriadoEm:     resp.CreatedAt,
	}
}

func shipmentResponseFromDomain(aggregate *shipment.Shipment) ShipmentResponse {
	var driverID *string
	if id := aggregate.DriverID(); id != nil {
		s := id.String()
		driverID = &s
	}

	details := aggregate.Details()

	return ShipmentResponse{
		ID:           aggregate.ID().String(),
		ClienteID:    aggregate.ClientID().String(),
		MotoristaID:  driverID,
		Titulo:       details.Title,
		Descricao:    details.Description,
		PesoKg:       details.WeightKg,
		Origem:       details.Origin,
		Destino:      details.Destination,
		Categoria:    details.Category.String(),
		TipoServico:  details.ServiceType.String(),
		Preco:        aggregate.Price(),
		Status:       aggregate.Status().String(),
		Escoltado:    details.Escorted,
		AgendadoPara: details.ScheduledAt,
		CriadoEm:     aggregate.CreatedAt(),
	}
}

func shipmentResponsesFromQuery(resps []queries.ShipmentResponse) []ShipmentResponse {
	out := make([]ShipmentResponse, len(resps))
	for i, resp := range resps {
		out[i] = shipmentResponseFromQuery(resp)
	}
	return out
}
