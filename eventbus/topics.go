package eventbus

// 기본 토픽 이름. kafka.topic 설정으로 교체할 수 있다.
const DefaultAnalysisTopic = "movie-review.analysis.events"

var TopicAnalysisEvents = NewTopic(DefaultAnalysisTopic)
