package shading

// DirectionalLight is a light with a direction and no position, like distant
// overhead lighting.
type DirectionalLight struct {
	Direction [3]float32
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
}

// PointLight radiates from a position in the scene.
type PointLight struct {
	Position [3]float32
	Ambient  [3]float32
	Diffuse  [3]float32
	Specular [3]float32
}

// DefaultDirectionalLight is the main scene light, angled down and into the
// scene.
func DefaultDirectionalLight() DirectionalLight {
	return DirectionalLight{
		Direction: [3]float32{0, -0.707, -0.707},
		Ambient:   [3]float32{0.4, 0.4, 0.4},
		Diffuse:   [3]float32{1, 1, 1},
		Specular:  [3]float32{1, 1, 1},
	}
}

// DefaultPointLight is a warm fill light above the board.
func DefaultPointLight() PointLight {
	return PointLight{
		Position: [3]float32{2, 3, 2},
		Ambient:  [3]float32{0.1, 0.05, 0.05},
		Diffuse:  [3]float32{0.8, 0.4, 0.3},
		Specular: [3]float32{1, 1, 1},
	}
}

// SetupLights enables lighting and uploads both scene lights. Runs once at
// scene preparation; the light state then holds for every frame.
func SetupLights(prog Program, dir DirectionalLight, point PointLight) {
	prog.SetBool(UniformUseLighting, true)

	prog.SetVec3("directionalLight.direction", dir.Direction)
	prog.SetVec3("directionalLight.ambient", dir.Ambient)
	prog.SetVec3("directionalLight.diffuse", dir.Diffuse)
	prog.SetVec3("directionalLight.specular", dir.Specular)
	prog.SetBool("directionalLight.bActive", true)

	prog.SetVec3("pointLights[0].position", point.Position)
	prog.SetVec3("pointLights[0].ambient", point.Ambient)
	prog.SetVec3("pointLights[0].diffuse", point.Diffuse)
	prog.SetVec3("pointLights[0].specular", point.Specular)
	prog.SetBool("pointLights[0].bActive", true)
}
