package dto

type MissionResponseDTO struct {
	ID       int64  `json:"id" example:"31"`
	Kind     string `json:"kind" example:"messages"`
	Goal     string `json:"goal" example:"Send 50 messages"`
	Target   int    `json:"target" example:"50"`
	Progress int    `json:"progress" example:"12"`
	Reward   int64  `json:"reward" example:"200"`
	Claimed  bool   `json:"claimed" example:"false"`
}

type MissionProgressRequestDTO struct {
	Kind  string `json:"kind" example:"messages"`
	Count int    `json:"count" example:"1"`
}
