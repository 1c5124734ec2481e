package dto

// MovieDTO 는 TMDB 영화 항목을 필드 이름 그대로 노출한다.
type MovieDTO struct {
	ID            int     `json:"id" example:"27205"`
	Title         string  `json:"title" example:"Inception"`
	OriginalTitle string  `json:"original_title" example:"Inception"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date" example:"2010-07-15"`
	PosterPath    *string `json:"poster_path" example:"/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg"`
	BackdropPath  *string `json:"backdrop_path"`
	VoteAverage   float64 `json:"vote_average" example:"8.4"`
	VoteCount     int     `json:"vote_count" example:"35000"`
	Popularity    float64 `json:"popularity" example:"92.5"`
	GenreIDs      []int   `json:"genre_ids"`
}

// MoviePageDTO 는 /search, /discover 응답이다. Query 는 /search 에서만 채워진다.
type MoviePageDTO struct {
	Query        string     `json:"query,omitempty" example:"inception"`
	Page         int        `json:"page" example:"1"`
	TotalPages   int        `json:"totalPages" example:"3"`
	TotalResults int        `json:"totalResults" example:"52"`
	HasNext      bool       `json:"hasNext" example:"true"`
	HasPrev      bool       `json:"hasPrev" example:"false"`
	Results      []MovieDTO `json:"results"`
}

type GenreDTO struct {
	ID   int    `json:"id" example:"28"`
	Name string `json:"name" example:"Action"`
}

type GenresResponseDTO struct {
	Genres []GenreDTO `json:"genres"`
}

type ActorDTO struct {
	ID                 int     `json:"id" example:"6193"`
	Name               string  `json:"name" example:"Leonardo DiCaprio"`
	KnownForDepartment string  `json:"known_for_department" example:"Acting"`
	ProfilePath        *string `json:"profile_path"`
}

type ActorsResponseDTO struct {
	Results      []ActorDTO `json:"results"`
	Page         int        `json:"page" example:"1"`
	TotalPages   int        `json:"totalPages" example:"1"`
	TotalResults int        `json:"totalResults" example:"4"`
}
