package dto

import "time"

type ThumbnailDTO struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type YouTubeVideoDTO struct {
	VideoID      string                  `json:"videoId" example:"YoHD9XEInc0"`
	Title        string                  `json:"title" example:"Inception - Official Trailer"`
	ChannelTitle string                  `json:"channelTitle" example:"Warner Bros."`
	PublishedAt  time.Time               `json:"publishedAt"`
	Thumbnails   map[string]ThumbnailDTO `json:"thumbnails"`
}

type YouTubeSearchResponseDTO struct {
	Results []YouTubeVideoDTO `json:"results"`
}

type YouTubeCommentDTO struct {
	CommentID   string    `json:"commentId"`
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	LikeCount   int       `json:"likeCount"`
	PublishedAt time.Time `json:"publishedAt"`
	ReplyCount  int       `json:"replyCount"`
}

type YouTubeCommentsResponseDTO struct {
	Source   string              `json:"source" example:"youtube"`
	VideoID  string              `json:"videoId" example:"YoHD9XEInc0"`
	Count    int                 `json:"count" example:"200"`
	Comments []YouTubeCommentDTO `json:"comments"`
}

// YouTubeHealthResponseDTO 는 videoId 없이 호출하면 키 존재 여부만 확인한다.
type YouTubeHealthResponseDTO struct {
	Source  string  `json:"source" example:"youtube"`
	VideoID *string `json:"videoId"`
	OK      bool    `json:"ok"`
	Found   *bool   `json:"found,omitempty"`
	Status  int     `json:"status,omitempty" example:"200"`
	Note    string  `json:"note,omitempty"`
	Error   string  `json:"error,omitempty"`
}
