package highway

func systemTrafficAi(game *HighwayGame, dt float64) {
	for _, entityresult := range game.trafficView.Get() {
		if brainAspect, ok := entityresult.Components[game.trafficComponent].(TrafficBrain); ok {
			brainAspect.UpdateAI(dt)
		}
	}
}
