package handler

// View structs shape model rows for JSON responses.  The model structs
// themselves mirror table columns and carry no serialization tags.

import (
    "time"

    "github.com/portconnect/portconnect-backend/internal/model"
)

type portView struct {
    ID       uint64 `json:"id"`
    Name     string `json:"name"`
    Code     string `json:"code"`
    Location string `json:"location"`
    Timezone string `json:"timezone"`
}

type serviceView struct {
    ID           uint64    `json:"id"`
    Name         string    `json:"name"`
    Type         string    `json:"type"`
    Description  *string   `json:"description,omitempty"`
    PortID       uint64    `json:"port_id"`
    ProviderID   uint64    `json:"provider_id"`
    PricePerHour *float64  `json:"price_per_hour,omitempty"`
    Availability bool      `json:"availability"`
    CreatedAt    time.Time `json:"created_at"`
}

func toPortView(p model.Port) portView {
    return portView{ID: p.ID, Name: p.Name, Code: p.Code, Location: p.Location, Timezone: p.Timezone}
}

func toPortViews(ps []model.Port) []portView {
    out := make([]portView, 0, len(ps))
    for _, p := range ps {
        out = append(out, toPortView(p))
    }
    return out
}

func toServiceView(s model.Service) serviceView {
    return serviceView{
        ID:           s.ID,
        Name:         s.Name,
        Type:         string(s.Type),
        Description:  s.Description,
        PortID:       s.PortID,
        ProviderID:   s.ProviderID,
        PricePerHour: s.PricePerHour,
        Availability: s.Availability,
        CreatedAt:    s.CreatedAt,
    }
}

func toServiceViews(ss []model.Service) []serviceView {
    out := make([]serviceView, 0, len(ss))
    for _, s := range ss {
        out = append(out, toServiceView(s))
    }
    return out
}
