package sqlinline

const QSelectUserByEmail = `--sql 4597fa85-2984-44e5-ba62-c9c2d06f1a15
select id, email, coalesce(full_name, ''), is_admin, password_hash, created_at
from users
where lower(email) = lower($1::text)
limit 1;
`

const QSelectUserByID = `--sql 83858b60-8af5-4039-ada1-22fe1d427c8d
select id, email, coalesce(full_name, ''), is_admin, password_hash, created_at
from users
where id = $1::uuid
limit 1;
`

const QInsertUser = `--sql 765b48aa-7f4c-4f3f-9a62-0a1d5ceb0e53
insert into users(email, full_name, is_admin, password_hash, created_at)
values (lower($1::text), nullif($2::text, ''), $3::boolean, $4::text, now())
returning id, created_at;
`

const QSetUserAdmin = `--sql aa0ee2d7-c14f-4944-bc67-8568d3472795
update users
set is_admin = $2::boolean
where lower(email) = lower($1::text);
`
