package domain

// Tool is a resolved external executable.
type Tool struct {
	Name    string
	Path    string
	Version string
}

// Toolchain groups the external tools the pipeline depends on. The
// orchestrator only relies on their presence and exit-code contract.
type Toolchain struct {
	// Generator translates the project description into build instructions
	// and doubles as the build driver (cmake --build).
	Generator Tool
	// Compiler is the GPU-capable compiler the generator will pick up.
	Compiler Tool
	// GPUArchitectures are the compute capabilities of locally visible
	// devices, when detection succeeded. May be empty.
	GPUArchitectures []string
}
