package client

import "context"

// ScrollTrigger 视口相交事件到翻页动作的薄适配层。
// 事件源（真实的视口观察者）在外部，这里只消费事件
type ScrollTrigger struct {
	feed   *FeedController
	events <-chan struct{}
}

func NewScrollTrigger(feed *FeedController, events <-chan struct{}) *ScrollTrigger {
	return &ScrollTrigger{
		feed:   feed,
		events: events,
	}
}

// Run 阻塞消费事件，事件源关闭或 ctx 结束时返回
func (s *ScrollTrigger) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-s.events:
			if !ok {
				return
			}
			if s.feed.CanLoadMore() {
				s.feed.LoadMore(ctx)
			}
		}
	}
}
