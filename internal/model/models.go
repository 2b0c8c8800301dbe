package model

// Movie 电影（由外部数据导入流程预先写入，本服务只读）
type Movie struct {
	ID          int     `json:"id" db:"id" gorm:"column:id;primaryKey"`
	Title       string  `json:"title" db:"title" gorm:"column:title"`
	ReleaseDate string  `json:"release_date" db:"release_date" gorm:"column:release_date"`
	VoteAverage float64 `json:"vote_average" db:"vote_average" gorm:"column:vote_average"`
	Overview    string  `json:"overview" db:"overview" gorm:"column:overview"`

	// Genres 展示用的逗号拼接字符串（如 "Action, Sci-Fi"），查询时填充，无流派时为空
	Genres string `json:"genres" db:"genres" gorm:"-"`
}

// TableName 指定表名
func (Movie) TableName() string {
	return "movies"
}

// Genre 流派（只读）
type Genre struct {
	ID   int    `json:"genre_id" db:"genre_id" gorm:"column:genre_id;primaryKey"`
	Name string `json:"genre" db:"genre" gorm:"column:genre"`
}

// TableName 指定表名
func (Genre) TableName() string {
	return "genres"
}

// MovieGenre 电影与流派的多对多关联
type MovieGenre struct {
	MovieID int `json:"movie_id" db:"movie_id" gorm:"column:movie_id;primaryKey;autoIncrement:false"`
	GenreID int `json:"genre_id" db:"genre_id" gorm:"column:genre_id;primaryKey;autoIncrement:false"`
}

// TableName 指定表名
func (MovieGenre) TableName() string {
	return "movies_genres"
}

// Favorite 用户收藏，复合主键保证同一 (user_id, movie_id) 至多一条，
// movie_id 外键引用 movies 表
type Favorite struct {
	UserID  int64 `json:"user_id" db:"user_id" gorm:"column:user_id;primaryKey;autoIncrement:false"`
	MovieID int   `json:"movie_id" db:"movie_id" gorm:"column:movie_id;primaryKey;autoIncrement:false"`

	Movie *Movie `json:"-" gorm:"foreignKey:MovieID;references:ID"`
}

// TableName 指定表名
func (Favorite) TableName() string {
	return "user_favorites"
}

// Translation 翻译缓存条目，键为 "源语言_目标语言_原文" 的拼接串
type Translation struct {
	Key  string `json:"original_text" db:"original_text" gorm:"column:original_text;primaryKey"`
	Text string `json:"translated_text" db:"translated_text" gorm:"column:translated_text;not null"`
}

// TableName 指定表名
func (Translation) TableName() string {
	return "translations_cache"
}
