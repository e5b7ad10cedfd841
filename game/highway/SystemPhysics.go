package highway

func systemPhysics(game *HighwayGame, dt float64) {
	for _, entityresult := range game.vehiclesView.Get() {
		if physicsAspect, ok := entityresult.Components[game.vehicleComponent].(VehiclePhysics); ok {
			physicsAspect.UpdatePhysics(dt)
		}
	}
}
