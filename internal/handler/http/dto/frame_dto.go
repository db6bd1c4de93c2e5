package dto

// Request DTOs for frame handlers

// FrameCastID identifies the cast a frame was interacted with from.
type FrameCastID struct {
	FID  uint64 `json:"fid"`
	Hash string `json:"hash"`
}

// FrameUntrustedData is the unsigned part of a frame action. The fid is taken as-is.
type FrameUntrustedData struct {
	FID         uint64      `json:"fid"`
	URL         string      `json:"url"`
	MessageHash string      `json:"messageHash"`
	Timestamp   int64       `json:"timestamp"`
	Network     int         `json:"network"`
	ButtonIndex int         `json:"buttonIndex"`
	CastID      FrameCastID `json:"castId"`
}

// FrameActionRequest is the body a frame client posts when a button is pressed.
type FrameActionRequest struct {
	UntrustedData FrameUntrustedData `json:"untrustedData"`
	TrustedData   struct {
		MessageBytes string `json:"messageBytes"`
	} `json:"trustedData"`
}

// VoteUntrustedData is FrameUntrustedData with the fields a vote needs made mandatory.
type VoteUntrustedData struct {
	FID         uint64 `json:"fid" binding:"required,gt=0"`
	ButtonIndex int    `json:"buttonIndex" binding:"required,oneof=1 2"`
}

// VoteRequest is a frame action that casts a vote.
type VoteRequest struct {
	UntrustedData VoteUntrustedData `json:"untrustedData"`
}

// TallyURI binds the path of the tally endpoint.
type TallyURI struct {
	Date  string `uri:"date" binding:"required,wishdate"`
	Index int    `uri:"index" binding:"min=0"`
}

// TodayQuery binds the optional fid of the JSON wish endpoint.
type TodayQuery struct {
	FID uint64 `form:"fid"`
}
