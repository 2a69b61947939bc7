package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/middleware"
)

const (
	kindQuery    = "query"
	kindMutation = "mutation"
)

type Procedure struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Tier string `json:"tier"`
}

// procedureRouter mounts procedures under one group and remembers them for the catalogue.
type procedureRouter struct {
	router     fiber.Router
	procedures []Procedure
}

func newProcedureRouter(router fiber.Router) *procedureRouter {
	return &procedureRouter{router: router}
}

func (p *procedureRouter) query(name string, tier middleware.Tier, handlers ...fiber.Handler) {
	p.add(fiber.MethodGet, kindQuery, name, tier, handlers)
}

func (p *procedureRouter) mutation(name string, tier middleware.Tier, handlers ...fiber.Handler) {
	p.add(fiber.MethodPost, kindMutation, name, tier, handlers)
}

func (p *procedureRouter) add(method, kind, name string, tier middleware.Tier, handlers []fiber.Handler) {
	chain := make([]fiber.Handler, 0, len(handlers)+1)
	chain = append(chain, middleware.Require(tier))
	chain = append(chain, handlers...)

	p.router.Add(method, "/"+name, chain...)
	p.procedures = append(p.procedures, Procedure{Name: name, Kind: kind, Tier: tier.String()})
}

func (p *procedureRouter) Procedures() []Procedure {
	out := make([]Procedure, len(p.procedures))
	copy(out, p.procedures)
	return out
}
