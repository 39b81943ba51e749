package model

import (
    "fmt"
    "time"
)

// ServiceType is the kind of port service a provider offers.
type ServiceType string

const (
    ServiceTugboat     ServiceType = "tugboat"
    ServiceBunkering   ServiceType = "bunkering"
    ServiceCleaning    ServiceType = "cleaning"
    ServiceMaintenance ServiceType = "maintenance"
    ServiceDocking     ServiceType = "docking"
)

// ParseServiceType validates a service type value from a request.
func ParseServiceType(s string) (ServiceType, error) {
    switch ServiceType(s) {
    case ServiceTugboat, ServiceBunkering, ServiceCleaning, ServiceMaintenance, ServiceDocking:
        return ServiceType(s), nil
    default:
        return "", fmt.Errorf("unknown service type: %q", s)
    }
}

// Service is a row in the `services` table: one offering by one provider
// at one port.  Its PortID and ProviderID determine which terminal
// operator and which provider may act on reservations against it.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name of the offering.
//  Type         – tugboat, bunkering, cleaning, maintenance or docking.
//  Description  – optional free-text description.
//  PortID       – port where the service is performed.
//  ProviderID   – user (role provider) who offers the service.
//  PricePerHour – optional hourly rate; nil when the price is on request.
//  Availability – whether the service currently accepts reservations.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Service struct {
    ID           uint64      // services.id
    Name         string      // services.name
    Type         ServiceType // services.type
    Description  *string     // services.description (nullable)
    PortID       uint64      // services.port_id
    ProviderID   uint64      // services.provider_id
    PricePerHour *float64    // services.price_per_hour (nullable)
    Availability bool        // services.availability
    CreatedAt    time.Time   // services.created_at
    UpdatedAt    time.Time   // services.updated_at
}
