// Package jobshop provides the core discrete-event simulation engine for a
// job-shop scheduling environment.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - time.go: Time, TimeDependency and the Occupied sum type
//   - state.go: the immutable State value and its component states
//   - instance.go: the static Instance configuration a State evolves against
//   - transition.go: ComponentTransition, the only unit of state change
//
// # Architecture
//
// The jobshop package defines the data model and error taxonomy;
// implementations of the moving parts live in sibling packages:
//   - jobshop/util: pure lookup/ordering/progression helpers
//   - jobshop/handler: pure functions that apply one ComponentTransition
//   - jobshop/validate: preconditions that gate a ComponentTransition
//   - jobshop/transport: transportability and destination selection
//   - jobshop/timemachine: next-event computation, outages, setups,
//     TimeDependency resolution
//   - jobshop/engine: the step loop that ties the above together
//   - jobshop/factory: ActionInterpreter / ObservationBuilder / RewardScorer
//   - jobshop/middleware: the external step(action) agent-loop contract
//   - jobshop/stochastic: TimeSource implementations and per-subsystem RNG
//   - jobshop/config: Instance loading from YAML
//   - jobshop/render: textual rendering of History
package jobshop
